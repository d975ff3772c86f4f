package whispercpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"podcast-whisper/internal/app/engine"
)

// tierModels maps a model tier to its ggml model file name. The bare
// "large" tier is an alias for the newest large checkpoint, matching
// upstream whisper behavior.
var tierModels = map[engine.ModelTier]string{
	engine.TierTiny:    "ggml-tiny.bin",
	engine.TierBase:    "ggml-base.bin",
	engine.TierSmall:   "ggml-small.bin",
	engine.TierMedium:  "ggml-medium.bin",
	engine.TierLarge:   "ggml-large-v3.bin",
	engine.TierLargeV2: "ggml-large-v2.bin",
	engine.TierLargeV3: "ggml-large-v3.bin",
}

// Config holds settings for the local whisper.cpp engine.
type Config struct {
	BinaryPath string
	ModelDir   string
	TempDir    string
}

// LocalEngine transcribes by executing a local whisper.cpp binary and
// reading back its JSON output file.
type LocalEngine struct {
	config Config
}

// New creates a LocalEngine with defaults applied.
func New(config Config) *LocalEngine {
	if config.BinaryPath == "" {
		config.BinaryPath = "whisper-cli"
	}
	if config.TempDir == "" {
		config.TempDir = os.TempDir()
	}
	return &LocalEngine{config: config}
}

// NewFromSettings creates a LocalEngine from a generic settings block.
func NewFromSettings(settings map[string]interface{}) (*LocalEngine, error) {
	config := Config{}
	if binaryPath, ok := settings["binary_path"].(string); ok {
		config.BinaryPath = binaryPath
	}
	if modelDir, ok := settings["model_dir"].(string); ok {
		config.ModelDir = modelDir
	}
	if tempDir, ok := settings["temp_dir"].(string); ok {
		config.TempDir = tempDir
	}
	return New(config), nil
}

// ModelFile resolves a tier to the full path of its ggml model file.
func (le *LocalEngine) ModelFile(tier engine.ModelTier) string {
	name, ok := tierModels[tier]
	if !ok {
		name = tierModels[engine.DefaultTier]
	}
	return filepath.Join(le.config.ModelDir, name)
}

// Transcribe runs the whisper.cpp binary on the audio file and parses its
// JSON output into a RawResult.
func (le *LocalEngine) Transcribe(ctx context.Context, request *engine.Request) (*engine.RawResult, error) {
	if err := le.Validate(); err != nil {
		return nil, err
	}

	modelPath := le.ModelFile(request.Model)
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, engine.NewError(engine.CodeEngineUnavailable, "whispercpp",
			fmt.Errorf("model file not found: %s", modelPath)).
			WithHint(fmt.Sprintf("download the %s model into %s (see whisper.cpp models/download-ggml-model.sh)", request.Model, le.config.ModelDir))
	}

	language := request.Language
	if language == "" {
		// whisper.cpp detects the language itself when told to
		language = "auto"
	}

	outputBase := filepath.Join(le.config.TempDir, "a2t-"+uuid.NewString())
	outputFile := outputBase + ".json"
	defer os.Remove(outputFile)

	args := []string{
		"-m", modelPath,
		"-l", language,
		"-oj",
		"-np",
		"-f", request.AudioPath,
		"-of", outputBase,
	}

	command := exec.CommandContext(ctx, le.config.BinaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whispercpp",
			fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String()))
	}

	return parseOutputFile(outputFile)
}

// outputJSON mirrors the shape of whisper.cpp's -oj output file.
type outputJSON struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseOutputFile reads whisper.cpp's JSON output. Offsets come back in
// milliseconds; RawSegment timestamps are seconds.
func parseOutputFile(path string) (*engine.RawResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whispercpp",
			fmt.Errorf("failed to read output file: %v", err))
	}

	var out outputJSON
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, engine.NewError(engine.CodeTranscriptionFailed, "whispercpp",
			fmt.Errorf("failed to parse output file: %v", err))
	}

	result := &engine.RawResult{
		Language: out.Result.Language,
		Segments: make([]engine.RawSegment, 0, len(out.Transcription)),
	}

	var text strings.Builder
	for _, seg := range out.Transcription {
		result.Segments = append(result.Segments, engine.RawSegment{
			Start: float64(seg.Offsets.From) / 1000.0,
			End:   float64(seg.Offsets.To) / 1000.0,
			Text:  seg.Text,
		})
		text.WriteString(seg.Text)
	}
	result.Text = text.String()

	return result, nil
}

// Info returns metadata about the whisper.cpp engine.
func (le *LocalEngine) Info() engine.EngineInfo {
	return engine.EngineInfo{
		Name:             "whispercpp",
		DisplayName:      "Whisper.cpp (Local)",
		Type:             engine.TypeLocal,
		SupportsTiers:    true,
		RequiresInternet: false,
		RequiresAPIKey:   false,
		RequiresBinary:   true,
		DefaultModel:     tierModels[engine.DefaultTier],
	}
}

// Validate checks the binary can be found and the model directory exists.
func (le *LocalEngine) Validate() error {
	if _, err := exec.LookPath(le.config.BinaryPath); err != nil {
		return engine.NewError(engine.CodeEngineUnavailable, "whispercpp",
			fmt.Errorf("whisper.cpp binary not found: %s", le.config.BinaryPath)).
			WithHint("build whisper.cpp and set engines.whispercpp.binary_path, or put whisper-cli on PATH")
	}
	if le.config.ModelDir != "" {
		if _, err := os.Stat(le.config.ModelDir); os.IsNotExist(err) {
			return engine.NewError(engine.CodeEngineUnavailable, "whispercpp",
				fmt.Errorf("model directory not found: %s", le.config.ModelDir)).
				WithHint("set engines.whispercpp.model_dir to the directory holding ggml model files")
		}
	}
	return nil
}
