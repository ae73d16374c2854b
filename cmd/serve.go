package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the layout viewer",
		Long: `Starts the Parking Architect web interface on the specified port.

The web interface lets you upload a reference floor plan, describe the lot,
generate a layout, pan and zoom it, and export it as parking-layout.svg.`,
		Example: `  # Start server on default port 8888
  parking-architect serve

  # Start server on custom port
  parking-architect serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := handlers.New(architect.NewClient()).WithStaticDir(staticDir)

			// Set up routes
			mux := http.NewServeMux()
			handler.Register(mux)

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           handlers.LogRequests(mux),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Parking Architect interface available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				if err := handler.Wait(shutdownCtx); err != nil {
					slog.Warn("Abandoning in-flight generations", "err", err)
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&staticDir, "static", "static", "Directory holding the viewer page")

	return cmd
}
