package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/loptr-yoo/paking-ai-1/internal/export"
	"github.com/loptr-yoo/paking-ai-1/internal/legend"
	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
)

func (h *Handler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	session.Dismiss()
	h.writeJSON(w, session.Snapshot())
}

func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	var action viewer.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := session.Apply(action); err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, session.Snapshot())
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	if err := export.Serve(w, session.SVG()); err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			h.writeError(w, "No layout to export", http.StatusNotFound)
			return
		}
		slog.Error("Unable to write export", "session_id", session.ID(), "err", err)
	}
}

func (h *Handler) HandleLegend(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, legend.Catalog())
}
