package openaiapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podcast-whisper/internal/app/engine"
)

func newTestEngine(t *testing.T, handler http.HandlerFunc) *RemoteEngine {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	return New(openai.NewClientWithConfig(config))
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake mp3 bytes"), 0644))
	return path
}

func TestTranscribe_Success(t *testing.T) {
	re := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))
		if r.Header.Get("Authorization") == "" {
			t.Error("Missing Authorization header")
		}

		w.Write([]byte(`{
			"task": "transcribe",
			"language": "en",
			"duration": 7.21,
			"text": "Hello there. General Kenobi.",
			"segments": [
				{"id": 0, "start": 0.0, "end": 3.5, "text": " Hello there."},
				{"id": 1, "start": 3.5, "end": 7.21, "text": " General Kenobi."}
			]
		}`))
	})

	result, err := re.Transcribe(context.Background(),
		engine.NewRequest(writeTempAudio(t), engine.TierBase, ""))
	require.NoError(t, err)

	assert.Equal(t, "Hello there. General Kenobi.", result.Text)
	assert.Equal(t, "en", result.Language)
	require.Len(t, result.Segments, 2)
	assert.Equal(t, engine.RawSegment{Start: 3.5, End: 7.21, Text: " General Kenobi."}, result.Segments[1])
}

func TestTranscribe_PassesLanguageHint(t *testing.T) {
	var gotLanguage string
	re := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotLanguage = r.FormValue("language")
		w.Write([]byte(`{"text": "hallo", "language": "de"}`))
	})

	_, err := re.Transcribe(context.Background(),
		engine.NewRequest(writeTempAudio(t), engine.TierBase, "de"))
	require.NoError(t, err)
	assert.Equal(t, "de", gotLanguage)
}

func TestTranscribe_APIError(t *testing.T) {
	re := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`))
	})

	_, err := re.Transcribe(context.Background(),
		engine.NewRequest(writeTempAudio(t), engine.TierBase, ""))
	require.Error(t, err)
	assert.Equal(t, engine.CodeTranscriptionFailed, engine.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "429") || strings.Contains(err.Error(), "Rate limit"))
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	re, err := NewFromSettings(map[string]interface{}{})
	require.NoError(t, err)

	err = re.Validate()
	require.Error(t, err)
	assert.True(t, engine.IsEngineUnavailable(err))
	assert.Contains(t, engine.HintOf(err), "OPENAI_API_KEY")
}

func TestNewFromSettings_KeyFromSettings(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	re, err := NewFromSettings(map[string]interface{}{"api_key": "sk-from-config"})
	require.NoError(t, err)
	require.NoError(t, re.Validate())
}
