package engine

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures so the CLI can map them to messages and
// exit codes without inspecting engine internals.
type ErrorCode string

const (
	// CodeAudioNotFound means the input path did not resolve to a file.
	CodeAudioNotFound ErrorCode = "audio_not_found"
	// CodeEngineUnavailable means the engine's dependency is missing or
	// unreachable: no binary, no model file, no API key, server down.
	CodeEngineUnavailable ErrorCode = "engine_unavailable"
	// CodeTranscriptionFailed covers any other delegated failure.
	CodeTranscriptionFailed ErrorCode = "transcription_failed"
)

// Error is the typed failure returned by engines and the transcriber.
type Error struct {
	Code   ErrorCode
	Engine string
	Hint   string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Code)
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Engine != "" {
		return fmt.Sprintf("%s: %s", e.Engine, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed engine error wrapping an underlying cause.
func NewError(code ErrorCode, engineName string, err error) *Error {
	return &Error{Code: code, Engine: engineName, Err: err}
}

// WithHint attaches a remediation hint, shown to the user on failure.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// CodeOf extracts the error code, defaulting to CodeTranscriptionFailed
// for untyped errors.
func CodeOf(err error) ErrorCode {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code
	}
	return CodeTranscriptionFailed
}

// HintOf extracts the remediation hint, if any.
func HintOf(err error) string {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Hint
	}
	return ""
}

// IsAudioNotFound reports whether err is an input-file error.
func IsAudioNotFound(err error) bool {
	return CodeOf(err) == CodeAudioNotFound
}

// IsEngineUnavailable reports whether err is a dependency error.
func IsEngineUnavailable(err error) bool {
	return CodeOf(err) == CodeEngineUnavailable
}
