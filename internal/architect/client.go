package architect

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/genai"
)

const (
	// DefaultModel is the fixed model identifier used for every generation
	DefaultModel = "gemini-3-pro-preview"
	// ThinkingBudget is the fixed internal reasoning budget in tokens
	ThinkingBudget int32 = 16000
	// ReferenceMIMEType tags every reference image, whatever its real encoding
	ReferenceMIMEType = "image/jpeg"
	// GenericFailureMessage is the only failure text shown to users
	GenericFailureMessage = "Failed to generate map. Please try again with a simpler prompt or clear image."
)

var (
	// ErrAPIKeyMissing indicates neither GEMINI_API_KEY nor API_KEY is set
	ErrAPIKeyMissing = errors.New("gemini api key not found in GEMINI_API_KEY or API_KEY")
	// ErrInvalidImage indicates the reference image payload is not valid base64
	ErrInvalidImage = errors.New("reference image is not valid base64")
)

// Request is one generation request. Both fields are optional.
type Request struct {
	// ReferenceImage is a data URI or a raw base64 payload
	ReferenceImage string `json:"reference_image,omitempty"`
	Instruction    string `json:"instruction"`
}

// HasImage reports whether a reference image was supplied
func (r Request) HasImage() bool {
	return r.ReferenceImage != ""
}

// Result holds the cleaned SVG markup
type Result struct {
	SVG string `json:"svg"`
}

// ContentGenerator is the part of the Gemini models service the client needs
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Connector opens a ContentGenerator for an API key
type Connector func(ctx context.Context, apiKey string) (ContentGenerator, error)

// Client turns requests into one Gemini call each
type Client struct {
	apiKey  string
	model   string
	connect Connector
}

// NewClient creates a client using the API key from the environment.
// A missing key is not an error here; Generate reports it.
func NewClient() *Client {
	return &Client{
		apiKey:  APIKeyFromEnv(),
		model:   DefaultModel,
		connect: connectGemini,
	}
}

// NewClientWithGenerator creates a client bound to an existing generator
func NewClientWithGenerator(gen ContentGenerator) *Client {
	return &Client{
		model: DefaultModel,
		connect: func(context.Context, string) (ContentGenerator, error) {
			return gen, nil
		},
	}
}

// Model returns the model identifier used by the client
func (c *Client) Model() string {
	return c.model
}

// APIKeyFromEnv returns GEMINI_API_KEY, falling back to API_KEY
func APIKeyFromEnv() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("API_KEY")
}

func connectGemini(ctx context.Context, apiKey string) (ContentGenerator, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client.Models, nil
}

// Generate issues a single generation call and returns validated SVG markup
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	parts, err := BuildParts(req)
	if err != nil {
		return nil, err
	}

	gen, err := c.connect(ctx, c.apiKey)
	if err != nil {
		return nil, err
	}

	slog.Info("Requesting parking layout", "model", c.model, "parts", len(parts), "reference_image", req.HasImage())

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	resp, err := gen.GenerateContent(ctx, c.model, contents, GenerateConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
		slog.Debug("Gemini candidate received", "finish_reason", resp.Candidates[0].FinishReason)
	}

	markup := CleanMarkup(ResponseText(resp))
	if err := ValidateMarkup(markup); err != nil {
		slog.Warn("Model answer has no SVG root tag", "length", len(markup))
		return nil, err
	}

	slog.Info("Parking layout generated", "model", c.model, "length", len(markup))
	return &Result{SVG: markup}, nil
}

// BuildParts returns the ordered content parts: the image part (when present)
// followed by the task text.
func BuildParts(req Request) ([]*genai.Part, error) {
	text := &genai.Part{Text: TaskInstruction(req.HasImage(), req.Instruction)}
	if !req.HasImage() {
		return []*genai.Part{text}, nil
	}

	data, err := decodeImagePayload(req.ReferenceImage)
	if err != nil {
		return nil, err
	}

	image := &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: ReferenceMIMEType,
			Data:     data,
		},
	}
	return []*genai.Part{image, text}, nil
}

// GenerateConfig returns the fixed model configuration
func GenerateConfig() *genai.GenerateContentConfig {
	budget := ThinkingBudget
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction()}},
		},
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &budget,
		},
	}
}

// ImagePayload returns what follows the first comma of a data URI, or the
// input itself when there is no comma or nothing after it. Every intake path
// splits reference images with this rule.
func ImagePayload(image string) string {
	if _, payload, ok := strings.Cut(image, ","); ok && payload != "" {
		return payload
	}
	return image
}

func decodeImagePayload(image string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ImagePayload(image)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return data, nil
}
