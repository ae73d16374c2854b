package models

import "time"

// Session is the JSON view of one parking layout session
type Session struct {
	ID          string        `json:"id"`
	State       string        `json:"state"`
	SVG         string        `json:"svg,omitempty"`
	Error       string        `json:"error,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
	HasImage    bool          `json:"has_image"`
	Image       *ImageItem    `json:"image,omitempty"`
	Transform   ViewTransform `json:"transform"`
	Dragging    bool          `json:"dragging"`
	Model       string        `json:"model,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ViewTransform is the pan/zoom state applied to the rendered SVG
type ViewTransform struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"x"`
	OffsetY float64 `json:"y"`
	CSS     string  `json:"css"`
}

// ImageItem describes the reference image of the last request
type ImageItem struct {
	Source      string `json:"source"` // "upload", "url", "data_uri", "file"
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
	Bytes       int    `json:"bytes"`
}
