package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLegendCommand(t *testing.T) {
	out, err := run(t, "legend")
	require.NoError(t, err)
	assert.Contains(t, out, "#10B981")
	assert.Contains(t, out, "Ground (地面)")

	out, err = run(t, "legend", "--format", "json")
	require.NoError(t, err)
	var cats []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	assert.Len(t, cats, 18)

	out, err = run(t, "legend", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "chinese_name: 行车道")

	_, err = run(t, "legend", "--format", "xml")
	assert.Error(t, err)
}

func TestGenerateDryRun(t *testing.T) {
	out, err := run(t, "generate", "--prompt", "three ramps", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "model: gemini-3-pro-preview")
	assert.Contains(t, out, "thinking budget: 16000")
	assert.Contains(t, out, "parts: 1")
	assert.Contains(t, out, `"three ramps"`)
}

func TestGenerateMissingImage(t *testing.T) {
	_, err := run(t, "generate", "--image", "does-not-exist.png", "--dry-run")
	assert.ErrorContains(t, err, "failed to load reference image")
}
