package transcribe

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"podcast-whisper/internal/app/engine"
)

// fallbackLanguage is reported when the engine omits the detected language
// and the caller gave no hint. Matches historical Whisper tooling behavior.
const fallbackLanguage = "en"

// Transcriber runs one transcription end to end: validate the request,
// delegate to the engine, reshape the raw output into a Result.
type Transcriber struct {
	engine   engine.Engine
	logger   *zap.Logger
	validate *validator.Validate
}

// NewTranscriber creates a Transcriber bound to one engine.
func NewTranscriber(eng engine.Engine, logger *zap.Logger) *Transcriber {
	return &Transcriber{
		engine:   eng,
		logger:   logger,
		validate: validator.New(),
	}
}

// Transcribe performs the single straight-line operation: validate, stat
// the input, call the engine, reshape. It blocks until the engine returns.
func (t *Transcriber) Transcribe(ctx context.Context, request *engine.Request) (*Result, error) {
	if err := t.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("invalid transcription request: %w", err)
	}

	if _, err := os.Stat(request.AudioPath); err != nil {
		return nil, engine.NewError(engine.CodeAudioNotFound, t.engine.Info().Name,
			fmt.Errorf("audio file not found: %s", request.AudioPath))
	}

	info := t.engine.Info()
	t.logger.Info("loading model",
		zap.String("engine", info.Name),
		zap.String("model", string(request.Model)))
	t.logger.Info("transcribing",
		zap.String("file", request.AudioPath))

	raw, err := t.engine.Transcribe(ctx, request)
	if err != nil {
		return nil, err
	}

	return reshape(raw, request.Language), nil
}

// reshape turns raw engine output into the final Result: trimmed text,
// two-decimal timestamps, derived duration, resolved language. Segment
// order is kept exactly as the engine emitted it.
func reshape(raw *engine.RawResult, languageHint string) *Result {
	segments := lo.Map(raw.Segments, func(seg engine.RawSegment, _ int) Segment {
		return Segment{
			Start: round2(seg.Start),
			End:   round2(seg.End),
			Text:  strings.TrimSpace(seg.Text),
		}
	})

	var duration float64
	if len(segments) > 0 {
		duration = segments[len(segments)-1].End
	}

	language := raw.Language
	if language == "" {
		language = languageHint
	}
	if language == "" {
		language = fallbackLanguage
	}

	return &Result{
		Text:     strings.TrimSpace(raw.Text),
		Language: language,
		Duration: duration,
		Segments: segments,
	}
}

// round2 rounds seconds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
