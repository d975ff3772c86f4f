package openaiapi

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"podcast-whisper/internal/app/engine"
)

// Config holds settings for the hosted OpenAI Whisper API.
type Config struct {
	APIKey  string
	BaseURL string
}

// RemoteEngine transcribes through the OpenAI audio transcription API.
// The hosted API exposes a single whisper-1 model, so every tier maps to it.
type RemoteEngine struct {
	client *openai.Client
	// apiKeySet records whether a key was configured; the client itself
	// does not expose its credentials.
	apiKeySet bool
}

// New creates a RemoteEngine from an existing, already-authenticated client.
func New(client *openai.Client) *RemoteEngine {
	return &RemoteEngine{client: client, apiKeySet: true}
}

// NewFromSettings creates a RemoteEngine from a generic settings block.
// The API key falls back to the OPENAI_API_KEY environment variable.
func NewFromSettings(settings map[string]interface{}) (*RemoteEngine, error) {
	config := Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
	}
	if apiKey, ok := settings["api_key"].(string); ok && apiKey != "" {
		config.APIKey = apiKey
	}
	if baseURL, ok := settings["base_url"].(string); ok {
		config.BaseURL = baseURL
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	eng := New(openai.NewClientWithConfig(clientConfig))
	eng.apiKeySet = config.APIKey != ""
	return eng, nil
}

// Transcribe calls CreateTranscription with verbose JSON so segment timing
// and the detected language come back.
func (re *RemoteEngine) Transcribe(ctx context.Context, request *engine.Request) (*engine.RawResult, error) {
	if err := re.Validate(); err != nil {
		return nil, err
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: request.AudioPath,
		Language: request.Language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := re.client.CreateTranscription(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "openai",
			fmt.Errorf("createTranscription failed: %v", err))
	}

	result := &engine.RawResult{
		Text:     resp.Text,
		Language: resp.Language,
		Segments: make([]engine.RawSegment, 0, len(resp.Segments)),
	}
	for _, seg := range resp.Segments {
		result.Segments = append(result.Segments, engine.RawSegment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return result, nil
}

// Info returns metadata about the OpenAI engine.
func (re *RemoteEngine) Info() engine.EngineInfo {
	return engine.EngineInfo{
		Name:             "openai",
		DisplayName:      "OpenAI Whisper API",
		Type:             engine.TypeRemote,
		SupportsTiers:    false,
		RequiresInternet: true,
		RequiresAPIKey:   true,
		RequiresBinary:   false,
		DefaultModel:     "whisper-1",
	}
}

// Validate checks that an API key was configured.
func (re *RemoteEngine) Validate() error {
	if !re.apiKeySet {
		return engine.NewError(engine.CodeEngineUnavailable, "openai",
			fmt.Errorf("OPENAI_API_KEY is not set")).
			WithHint("export OPENAI_API_KEY or add engines.openai.api_key to the config file")
	}
	return nil
}
