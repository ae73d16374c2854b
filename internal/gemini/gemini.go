package gemini

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ErrAPIKeyMissing is the generation client's sentinel, so callers see one
// error whichever command needed the key
var ErrAPIKeyMissing = architect.ErrAPIKeyMissing

// Model describes one model visible to the API key
type Model struct {
	Name              string   `json:"name" yaml:"name"`
	DisplayName       string   `json:"display_name" yaml:"display_name"`
	InputTokenLimit   int32    `json:"input_token_limit" yaml:"input_token_limit"`
	OutputTokenLimit  int32    `json:"output_token_limit" yaml:"output_token_limit"`
	GenerationMethods []string `json:"generation_methods" yaml:"generation_methods"`
}

// ID returns the model name without the "models/" prefix
func (m Model) ID() string {
	return strings.TrimPrefix(m.Name, "models/")
}

// SupportsGeneration reports whether the model can serve generateContent
func (m Model) SupportsGeneration() bool {
	for _, method := range m.GenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

// ModelIterator yields models until iterator.Done
type ModelIterator interface {
	Next() (*genai.ModelInfo, error)
}

// ListModels returns the models visible to the API key in the environment
func ListModels(ctx context.Context) ([]Model, error) {
	apiKey := architect.APIKeyFromEnv()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	return Collect(client.ListModels(ctx))
}

// Collect drains it into a list sorted by name
func Collect(it ModelIterator) ([]Model, error) {
	var models []Model
	for {
		info, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, Model{
			Name:              info.Name,
			DisplayName:       info.DisplayName,
			InputTokenLimit:   info.InputTokenLimit,
			OutputTokenLimit:  info.OutputTokenLimit,
			GenerationMethods: info.SupportedGenerationMethods,
		})
	}

	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models, nil
}
