package whispercpp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast-whisper/internal/app/engine"
)

func TestParseOutputFile(t *testing.T) {
	output := `{
  "result": {"language": "en"},
  "transcription": [
    {"offsets": {"from": 0, "to": 3500}, "text": " Hello there."},
    {"offsets": {"from": 3500, "to": 7210}, "text": " General Kenobi."}
  ]
}`
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(output), 0644))

	result, err := parseOutputFile(path)
	require.NoError(t, err)

	assert.Equal(t, "en", result.Language)
	assert.Equal(t, " Hello there. General Kenobi.", result.Text)

	require.Len(t, result.Segments, 2)
	// Offsets are milliseconds in the file, seconds in the RawResult.
	assert.Equal(t, 0.0, result.Segments[0].Start)
	assert.Equal(t, 3.5, result.Segments[0].End)
	assert.Equal(t, 3.5, result.Segments[1].Start)
	assert.Equal(t, 7.21, result.Segments[1].End)
}

func TestParseOutputFile_Missing(t *testing.T) {
	_, err := parseOutputFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, engine.CodeTranscriptionFailed, engine.CodeOf(err))
}

func TestParseOutputFile_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	_, err := parseOutputFile(path)
	require.Error(t, err)
	assert.Equal(t, engine.CodeTranscriptionFailed, engine.CodeOf(err))
}

func TestModelFile(t *testing.T) {
	le := New(Config{ModelDir: "/models"})

	tests := []struct {
		tier engine.ModelTier
		want string
	}{
		{engine.TierTiny, "/models/ggml-tiny.bin"},
		{engine.TierBase, "/models/ggml-base.bin"},
		{engine.TierLargeV2, "/models/ggml-large-v2.bin"},
		// Bare "large" follows the newest large checkpoint.
		{engine.TierLarge, "/models/ggml-large-v3.bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, filepath.FromSlash(tt.want), le.ModelFile(tt.tier))
	}
}

func TestValidate_MissingBinary(t *testing.T) {
	le := New(Config{BinaryPath: "definitely-not-a-real-binary-a2t"})

	err := le.Validate()
	require.Error(t, err)
	assert.True(t, engine.IsEngineUnavailable(err))
	assert.NotEmpty(t, engine.HintOf(err))
}

func TestNewFromSettings(t *testing.T) {
	le, err := NewFromSettings(map[string]interface{}{
		"binary_path": "/opt/whisper.cpp/whisper-cli",
		"model_dir":   "/opt/models",
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/whisper.cpp/whisper-cli", le.config.BinaryPath)
	assert.Equal(t, "/opt/models", le.config.ModelDir)

	// Defaults when the settings block is empty.
	le, err = NewFromSettings(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "whisper-cli", le.config.BinaryPath)
	assert.NotEmpty(t, le.config.TempDir)
}
