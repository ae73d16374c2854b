package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/loptr-yoo/paking-ai-1/internal/images"
)

// base64 inflates an image by a third, leave room for the form fields
const maxRequestSize = 2 * images.MaxImageSize

// generateInput is what a client sends to start a generation
type generateInput struct {
	Prompt    string
	Reference *images.Reference
}

// readGenerateInput accepts either a JSON body or a multipart form
func (h *Handler) readGenerateInput(w http.ResponseWriter, r *http.Request) (*generateInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		return h.readJSONInput(r)
	}
	return h.readFormInput(r)
}

func (h *Handler) readJSONInput(r *http.Request) (*generateInput, error) {
	var request struct {
		Prompt   string `json:"prompt"`
		Image    string `json:"image"`     // data URI or bare base64
		ImageURL string `json:"image_url"` // fetched server side
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		if tooLarge(err) {
			return nil, fmt.Errorf("%w: request body over %d bytes", images.ErrTooLarge, maxRequestSize)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	input := &generateInput{Prompt: request.Prompt}
	var err error
	switch {
	case request.Image != "" && request.ImageURL != "":
		return nil, errors.New("only one of image and image_url may be set")
	case request.Image != "":
		input.Reference, err = images.FromDataURI(request.Image)
	case request.ImageURL != "":
		input.Reference, err = h.fetcher.Download(r.Context(), request.ImageURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	return input, nil
}

func (h *Handler) readFormInput(r *http.Request) (*generateInput, error) {
	if err := r.ParseMultipartForm(images.MaxImageSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if tooLarge(err) {
			return nil, fmt.Errorf("%w: request body over %d bytes", images.ErrTooLarge, maxRequestSize)
		}
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	input := &generateInput{Prompt: r.FormValue("prompt")}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return input, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	input.Reference, err = images.FromUpload(file, header.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}
	return input, nil
}

// tooLarge reports whether err came from a body or form size limit
func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge)
}
