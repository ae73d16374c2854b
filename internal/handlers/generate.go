package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/images"
	"github.com/loptr-yoo/paking-ai-1/internal/models"
	"github.com/loptr-yoo/paking-ai-1/internal/viewer"
)

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	session, ok := h.getSessionOrError(w, r)
	if !ok {
		return
	}

	input, err := h.readGenerateInput(w, r)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, images.ErrTooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		h.writeError(w, "Invalid generate request: "+err.Error(), code)
		return
	}

	if err := h.startGeneration(r.Context(), session, input); err != nil {
		if errors.Is(err, viewer.ErrBusy) {
			h.writeError(w, "Generation already in progress", http.StatusConflict)
			return
		}
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSONStatus(w, session.Snapshot(), http.StatusAccepted)
}

// startGeneration marks the session busy and runs the model call in the
// background. The call outlives the HTTP request and is never cancelled.
func (h *Handler) startGeneration(ctx context.Context, session *viewer.Session, input *generateInput) error {
	req := architect.Request{Instruction: input.Prompt}
	var item *models.ImageItem
	if input.Reference != nil {
		req.ReferenceImage = input.Reference.DataURI()
		item = input.Reference.Item()
	}

	if err := session.Begin(input.Prompt, item); err != nil {
		return err
	}

	slog.Info("Generation started", "session_id", session.ID(), "reference_image", req.HasImage())

	h.inflight.Add(1)
	go h.runGeneration(context.WithoutCancel(ctx), session, req)
	return nil
}

func (h *Handler) runGeneration(ctx context.Context, session *viewer.Session, req architect.Request) {
	defer h.inflight.Done()
	defer func() {
		if p := recover(); p != nil {
			slog.Error("Generation panicked", "session_id", session.ID(), "panic", fmt.Sprint(p))
			_ = session.Fail(architect.GenericFailureMessage)
		}
	}()

	result, err := h.generator.Generate(ctx, req)
	if err != nil {
		slog.Error("Generation failed", "session_id", session.ID(), "error", err)
		if ferr := session.Fail(architect.GenericFailureMessage); ferr != nil {
			slog.Warn("Unable to record failure", "session_id", session.ID(), "error", ferr)
		}
		return
	}

	if err := session.Complete(result.SVG); err != nil {
		slog.Warn("Unable to record result", "session_id", session.ID(), "error", err)
		return
	}
	slog.Info("Generation finished", "session_id", session.ID(), "length", len(result.SVG))
}
