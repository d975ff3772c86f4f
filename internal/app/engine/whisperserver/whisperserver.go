package whisperserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"podcast-whisper/internal/app/engine"
)

// tierModels maps a model tier to the ggml file the server should load.
var tierModels = map[engine.ModelTier]string{
	engine.TierTiny:    "ggml-tiny.bin",
	engine.TierBase:    "ggml-base.bin",
	engine.TierSmall:   "ggml-small.bin",
	engine.TierMedium:  "ggml-medium.bin",
	engine.TierLarge:   "ggml-large-v3.bin",
	engine.TierLargeV2: "ggml-large-v2.bin",
	engine.TierLargeV3: "ggml-large-v3.bin",
}

// Config holds settings for a self-hosted whisper-server instance.
type Config struct {
	BaseURL       string
	InferencePath string
	LoadPath      string
	// ModelDir is the server-side directory holding ggml models. When set,
	// the engine asks the server to load the requested tier before inference.
	ModelDir string
	Timeout  time.Duration
}

// ServerEngine transcribes over HTTP against a whisper-server instance.
type ServerEngine struct {
	config Config
	client *http.Client
}

// New creates a ServerEngine with defaults applied.
func New(config Config) *ServerEngine {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.LoadPath == "" {
		config.LoadPath = "/load"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}
	return &ServerEngine{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// NewFromSettings creates a ServerEngine from a generic settings block.
func NewFromSettings(settings map[string]interface{}) (*ServerEngine, error) {
	config := Config{}
	baseURL, ok := settings["base_url"].(string)
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("base_url is required for the whisperserver engine")
	}
	config.BaseURL = baseURL

	if inferencePath, ok := settings["inference_path"].(string); ok {
		config.InferencePath = inferencePath
	}
	if loadPath, ok := settings["load_path"].(string); ok {
		config.LoadPath = loadPath
	}
	if modelDir, ok := settings["model_dir"].(string); ok {
		config.ModelDir = modelDir
	}
	if timeout, ok := settings["timeout_sec"].(float64); ok {
		config.Timeout = time.Duration(timeout) * time.Second
	} else if timeout, ok := settings["timeout_sec"].(int); ok {
		config.Timeout = time.Duration(timeout) * time.Second
	}

	return New(config), nil
}

// serverResponse mirrors whisper-server's verbose_json response.
type serverResponse struct {
	Text             string          `json:"text,omitempty"`
	Language         string          `json:"language,omitempty"`
	Duration         float64         `json:"duration,omitempty"`
	Segments         []serverSegment `json:"segments,omitempty"`
	DetectedLanguage string          `json:"detected_language,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// serverSegment is one segment in the verbose response.
type serverSegment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Transcribe uploads the audio file and parses the server's verbose JSON.
func (se *ServerEngine) Transcribe(ctx context.Context, request *engine.Request) (*engine.RawResult, error) {
	if se.config.ModelDir != "" {
		if err := se.loadModel(ctx, request.Model); err != nil {
			return nil, err
		}
	}

	body, contentType, err := se.createMultipartForm(request)
	if err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to create multipart form: %v", err))
	}

	url := se.config.BaseURL + se.config.InferencePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to create HTTP request: %v", err))
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := se.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, engine.NewError(engine.CodeEngineUnavailable, "whisperserver",
			fmt.Errorf("request to %s failed: %v", se.config.BaseURL, err)).
			WithHint("check that whisper-server is running and engines.whisperserver.base_url is correct")
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to read response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseData))))
	}

	var parsed serverResponse
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to parse response: %v", err))
	}
	if parsed.Error != "" {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("server error: %s", parsed.Error))
	}

	language := parsed.Language
	if language == "" {
		language = parsed.DetectedLanguage
	}

	return &engine.RawResult{
		Text:     parsed.Text,
		Language: language,
		Segments: lo.Map(parsed.Segments, func(seg serverSegment, _ int) engine.RawSegment {
			return engine.RawSegment{Start: seg.Start, End: seg.End, Text: seg.Text}
		}),
	}, nil
}

// loadModel asks the server to switch to the requested tier's model file.
func (se *ServerEngine) loadModel(ctx context.Context, tier engine.ModelTier) error {
	modelPath := path.Join(se.config.ModelDir, tierModels[tier])

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("model", modelPath); err != nil {
		return engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to write model field: %v", err))
	}
	if err := writer.Close(); err != nil {
		return engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to close multipart writer: %v", err))
	}

	url := se.config.BaseURL + se.config.LoadPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("failed to create load request: %v", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := se.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return engine.NewError(engine.CodeEngineUnavailable, "whisperserver",
			fmt.Errorf("load model request failed: %v", err)).
			WithHint("check that whisper-server is running and engines.whisperserver.base_url is correct")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return engine.NewError(engine.CodeTranscriptionFailed, "whisperserver",
			fmt.Errorf("load model failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(data))))
	}
	return nil
}

// createMultipartForm builds the inference upload.
func (se *ServerEngine) createMultipartForm(request *engine.Request) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(request.AudioPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(request.AudioPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %v", err)
	}

	params := map[string]string{
		"response_format": "verbose_json",
		"temperature":     "0.00",
	}
	if request.Language != "" {
		params["language"] = request.Language
	}
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %v", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType(), nil
}

// Info returns metadata about the whisper-server engine.
func (se *ServerEngine) Info() engine.EngineInfo {
	return engine.EngineInfo{
		Name:             "whisperserver",
		DisplayName:      "Whisper Server (HTTP API)",
		Type:             engine.TypeRemote,
		SupportsTiers:    se.config.ModelDir != "",
		RequiresInternet: true,
		RequiresAPIKey:   false,
		RequiresBinary:   false,
		DefaultModel:     "server-loaded",
	}
}

// Validate checks the configured base URL.
func (se *ServerEngine) Validate() error {
	if se.config.BaseURL == "" {
		return engine.NewError(engine.CodeEngineUnavailable, "whisperserver",
			fmt.Errorf("base_url is required")).
			WithHint("set engines.whisperserver.base_url in the config file")
	}
	if !strings.HasPrefix(se.config.BaseURL, "http://") && !strings.HasPrefix(se.config.BaseURL, "https://") {
		return engine.NewError(engine.CodeEngineUnavailable, "whisperserver",
			fmt.Errorf("base_url must start with http:// or https://"))
	}
	return nil
}
