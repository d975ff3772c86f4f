package engine

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	base := errors.New("boom")

	err := NewError(CodeAudioNotFound, "whispercpp", base)
	if !IsAudioNotFound(err) {
		t.Error("expected audio-not-found code")
	}
	if IsEngineUnavailable(err) {
		t.Error("did not expect engine-unavailable code")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to unwrap")
	}

	// Wrapping with %w keeps the code visible.
	wrapped := fmt.Errorf("outer: %w", err)
	if CodeOf(wrapped) != CodeAudioNotFound {
		t.Errorf("expected code to survive wrapping, got %q", CodeOf(wrapped))
	}
}

func TestErrorHint(t *testing.T) {
	err := NewError(CodeEngineUnavailable, "openai", errors.New("no key")).
		WithHint("export OPENAI_API_KEY")

	if HintOf(err) != "export OPENAI_API_KEY" {
		t.Errorf("unexpected hint %q", HintOf(err))
	}
	if HintOf(errors.New("plain")) != "" {
		t.Error("plain errors have no hint")
	}
}

func TestCodeOfUntypedError(t *testing.T) {
	if CodeOf(errors.New("anything")) != CodeTranscriptionFailed {
		t.Error("untyped errors default to transcription_failed")
	}
}

func TestErrorMessageIncludesEngine(t *testing.T) {
	err := NewError(CodeTranscriptionFailed, "whisperserver", errors.New("status 500"))
	want := "whisperserver: status 500"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
