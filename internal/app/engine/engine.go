package engine

import (
	"context"
)

// Engine is the boundary to a speech-recognition backend. Implementations
// are interchangeable: the transcriber depends only on this contract and
// never on a backend's internal representation.
type Engine interface {
	// Transcribe runs recognition on the request's audio file and returns
	// the engine's raw output. It blocks until the engine finishes; ctx is
	// the only cancellation mechanism.
	Transcribe(ctx context.Context, request *Request) (*RawResult, error)

	// Info returns engine metadata and requirements.
	Info() EngineInfo

	// Validate checks that the engine's dependencies are usable before any
	// transcription is attempted.
	Validate() error
}
