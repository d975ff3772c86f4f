package transcribe

// Segment is a contiguous time-bounded span of transcribed speech.
// Timestamps are seconds, rounded to two decimal places; text is trimmed.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the reshaped transcription output. It is constructed once from
// the engine's raw output, serialized, and never mutated.
//
// Duration is always derived from the last segment's end timestamp, never
// independently supplied; it is 0 when there are no segments.
type Result struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}
