package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// Filename is the name every exported layout is saved under
	Filename = "parking-layout.svg"
	// MIMEType is the content type of an exported layout
	MIMEType = "image/svg+xml"
)

// ErrNothingToExport is returned when there is no layout yet
var ErrNothingToExport = errors.New("no layout to export")

// WriteFile saves the markup verbatim. When path is a directory the
// layout is written there as Filename. It returns the written path.
func WriteFile(path, svg string) (string, error) {
	if svg == "" {
		return "", ErrNothingToExport
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, Filename)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return "", fmt.Errorf("failed to write layout: %w", err)
	}

	slog.Info("Layout exported", "path", path, "bytes", len(svg))
	return path, nil
}

// Serve sends the markup as a file download
func Serve(w http.ResponseWriter, svg string) error {
	if svg == "" {
		return ErrNothingToExport
	}

	w.Header().Set("Content-Type", MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(svg)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(svg)); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}
