package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
)

func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/static/")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		path = "index.html"
	}

	// Check if image URL parameter is provided
	imageURL := r.URL.Query().Get("image")
	if imageURL != "" && path == "index.html" {
		// Create a session and start generating from the image URL
		ref, err := h.fetcher.Download(r.Context(), imageURL)
		if err != nil {
			slog.Error("Failed to create session from URL", "url", imageURL, "error", err)
			http.Error(w, "Failed to process image URL: "+err.Error(), http.StatusBadRequest)
			return
		}

		session := h.newSession()
		input := &generateInput{Prompt: r.URL.Query().Get("prompt"), Reference: ref}
		if err := h.startGeneration(r.Context(), session, input); err != nil {
			h.writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Redirect to the homepage
		http.Redirect(w, r, "/?session="+session.ID(), http.StatusFound)
		return
	}

	// Prevent directory traversal attacks
	if strings.Contains(path, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	// Set appropriate content type based on file extension
	switch {
	case strings.HasSuffix(path, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(path, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	case strings.HasSuffix(path, ".html"):
		w.Header().Set("Content-Type", "text/html")
	case strings.HasSuffix(path, ".svg"):
		w.Header().Set("Content-Type", "image/svg+xml")
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, filepath.FromSlash(path)))
}
