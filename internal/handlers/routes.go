package handlers

import (
	"log/slog"
	"net/http"
)

// Register adds the API, static and healthcheck routes to mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/legend", h.HandleLegend)
	mux.HandleFunc("GET /api/sessions", h.HandleListSessions)
	mux.HandleFunc("POST /api/sessions", h.HandleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.HandleSessionDetail)
	mux.HandleFunc("DELETE /api/sessions/{id}", h.HandleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/generate", h.HandleGenerate)
	mux.HandleFunc("POST /api/sessions/{id}/dismiss", h.HandleDismiss)
	mux.HandleFunc("POST /api/sessions/{id}/view", h.HandleView)
	mux.HandleFunc("GET /api/sessions/{id}/export", h.HandleExport)
	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	mux.HandleFunc("GET /", h.HandleStatic)
}
