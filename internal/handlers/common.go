package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/images"
	"github.com/loptr-yoo/paking-ai-1/internal/storage"
	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
)

// Generator produces a layout for a request
type Generator interface {
	Generate(ctx context.Context, req architect.Request) (*architect.Result, error)
	Model() string
}

type Handler struct {
	sessionStore *storage.SessionStore
	generator    Generator
	fetcher      *images.Fetcher
	staticDir    string

	// in-flight background generations
	inflight sync.WaitGroup
}

func New(generator Generator) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		generator:    generator,
		fetcher:      images.NewFetcher(),
		staticDir:    "static",
	}
}

// WithStaticDir sets the directory the viewer page is served from
func (h *Handler) WithStaticDir(dir string) *Handler {
	h.staticDir = dir
	return h
}

// Wait blocks until background generations finish or ctx is done
func (h *Handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	h.writeJSONStatus(w, data, http.StatusOK)
}

func (h *Handler) writeJSONStatus(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, r *http.Request) (*viewer.Session, bool) {
	session, exists := h.sessionStore.Get(r.PathValue("id"))
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
