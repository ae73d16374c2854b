package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/loptr-yoo/paking-ai-1/internal/architect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type sliceIterator struct {
	infos []*genai.ModelInfo
	err   error
}

func (s *sliceIterator) Next() (*genai.ModelInfo, error) {
	if len(s.infos) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, iterator.Done
	}
	info := s.infos[0]
	s.infos = s.infos[1:]
	return info, nil
}

func TestCollect(t *testing.T) {
	it := &sliceIterator{infos: []*genai.ModelInfo{
		{Name: "models/text-embedding-004", SupportedGenerationMethods: []string{"embedContent"}},
		{Name: "models/gemini-3-pro-preview", DisplayName: "Gemini 3 Pro Preview", InputTokenLimit: 1048576, OutputTokenLimit: 65536, SupportedGenerationMethods: []string{"generateContent", "countTokens"}},
	}}

	models, err := Collect(it)
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Equal(t, "gemini-3-pro-preview", models[0].ID())
	assert.True(t, models[0].SupportsGeneration())
	assert.Equal(t, int32(65536), models[0].OutputTokenLimit)
	assert.False(t, models[1].SupportsGeneration())
}

func TestCollectError(t *testing.T) {
	boom := errors.New("permission denied")
	_, err := Collect(&sliceIterator{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestListModelsWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	_, err := ListModels(context.Background())
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.ErrorIs(t, err, architect.ErrAPIKeyMissing)
}
