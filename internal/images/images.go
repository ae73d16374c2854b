package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/loptr-yoo/paking-ai-1/internal/models"
)

// MaxImageSize is the largest accepted reference image (10MB)
const MaxImageSize = 10 * 1024 * 1024

var (
	// ErrTooLarge is returned for images of MaxImageSize bytes or more
	ErrTooLarge = errors.New("image too large (max 10MB)")
	// ErrNotImage is returned when the bytes do not decode as an image
	ErrNotImage = errors.New("data is not a supported image")
)

// Reference is a decoded reference image ready to be sent to the model
type Reference struct {
	Source      string
	Name        string
	ContentType string
	Width       int
	Height      int
	Data        []byte
}

// DataURI encodes the image as a base64 data URI
func (r *Reference) DataURI() string {
	return "data:" + r.ContentType + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

// Item describes the image for session snapshots
func (r *Reference) Item() *models.ImageItem {
	return &models.ImageItem{
		Source:      r.Source,
		Name:        r.Name,
		ContentType: r.ContentType,
		ImageWidth:  r.Width,
		ImageHeight: r.Height,
		Bytes:       len(r.Data),
	}
}

// FromBytes validates raw image bytes
func FromBytes(data []byte, name, source string) (*Reference, error) {
	if len(data) >= MaxImageSize {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	return &Reference{
		Source:      source,
		Name:        name,
		ContentType: "image/" + format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Data:        data,
	}, nil
}

// FromUpload reads an uploaded file, refusing anything of MaxImageSize or more
func FromUpload(r io.Reader, name string) (*Reference, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, name, "upload")
}

// LoadFile reads a reference image from disk
func LoadFile(path string) (*Reference, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	data, err := readLimited(file)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, filepath.Base(path), "file")
}

// FromDataURI decodes a data URI or a bare base64 payload. The payload is
// split exactly as the generation client splits it.
func FromDataURI(uri string) (*Reference, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(architect.ImagePayload(uri)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrNotImage, err)
	}
	return FromBytes(data, "", "data_uri")
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) >= MaxImageSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
