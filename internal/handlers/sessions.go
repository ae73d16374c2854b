package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/loptr-yoo/paking-ai-1/internal/models"
	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
)

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.sessionStore.GetAll()
	sessionList := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		sessionList = append(sessionList, session.Snapshot())
	}
	h.writeJSON(w, sessionList)
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.newSession()
	h.writeJSONStatus(w, session.Snapshot(), http.StatusCreated)
}

func (h *Handler) HandleSessionDetail(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, session.Snapshot())
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}
	h.sessionStore.Delete(session.ID())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) newSession() *viewer.Session {
	session := viewer.NewSession(uuid.NewString(), h.generator.Model())
	h.sessionStore.Set(session)
	slog.Info("Session created", "session_id", session.ID())
	return session
}
