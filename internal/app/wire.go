//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"podcast-whisper/internal/app/transcribe"
)

// InitializeTranscriber wires a Transcriber for the named engine. An empty
// engineName falls back to the config file's default_engine.
func InitializeTranscriber(engineName string) (*transcribe.Transcriber, error) {
	wire.Build(
		provideLogger,
		provideSettings,
		provideEngine,
		transcribe.NewTranscriber,
	)
	return nil, nil
}
