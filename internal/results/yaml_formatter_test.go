package results

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewBatchReport(t *testing.T) {
	report := NewBatchReport(BatchConfig{Model: "gemini-3-pro-preview"}, []RecordResult{
		{Identifier: "a", Status: StatusOK, Bytes: 120},
		{Identifier: "b", Status: StatusFailed, Error: "model failed to generate valid SVG"},
		{Identifier: "c", Status: StatusOK},
	}, 3*time.Second)

	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 2, report.Summary.Succeeded)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, 3*time.Second, report.Summary.Elapsed)
}

func TestSaveToYAML(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	report := NewBatchReport(BatchConfig{
		Model:          "gemini-3-pro-preview",
		ThinkingBudget: 16000,
		DatasetPath:    "prompts.jsonl",
		Timestamp:      "2026-01-02_03-04-05",
	}, []RecordResult{{Identifier: "a", Status: StatusOK, Bytes: 42}}, time.Second)

	path, err := SaveToYAML(dir, report)
	require.NoError(t, err)
	assert.Equal(t, "batch-2026-01-02_03-04-05.yaml", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(data, &back))
	config := back["config"].(map[string]any)
	assert.Equal(t, "gemini-3-pro-preview", config["model"])
	assert.Equal(t, 16000, config["thinkingbudget"])
	assert.Contains(t, string(data), "identifier: a")
	assert.Contains(t, string(data), "status: ok")
}
