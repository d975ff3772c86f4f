package engine

import (
	"fmt"
	"strings"
)

// ModelTier names a Whisper capability/latency tradeoff point.
type ModelTier string

const (
	TierTiny    ModelTier = "tiny"
	TierBase    ModelTier = "base"
	TierSmall   ModelTier = "small"
	TierMedium  ModelTier = "medium"
	TierLarge   ModelTier = "large"
	TierLargeV2 ModelTier = "large-v2"
	TierLargeV3 ModelTier = "large-v3"
)

// DefaultTier is used when the caller does not select a model.
const DefaultTier = TierBase

// Tiers lists all valid model tiers, smallest to largest.
func Tiers() []ModelTier {
	return []ModelTier{
		TierTiny, TierBase, TierSmall, TierMedium,
		TierLarge, TierLargeV2, TierLargeV3,
	}
}

// ParseTier converts a CLI string into a ModelTier.
func ParseTier(s string) (ModelTier, error) {
	if s == "" {
		return DefaultTier, nil
	}
	tier := ModelTier(strings.ToLower(s))
	for _, t := range Tiers() {
		if tier == t {
			return tier, nil
		}
	}
	return "", fmt.Errorf("unknown model tier %q (valid: %s)", s, tierList())
}

func tierList() string {
	names := make([]string, 0, len(Tiers()))
	for _, t := range Tiers() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// Request describes a single transcription call. It is built once per
// invocation from CLI arguments and handed to an Engine unmodified.
type Request struct {
	AudioPath string    `json:"audio_path" validate:"required"`
	Model     ModelTier `json:"model" validate:"required,oneof=tiny base small medium large large-v2 large-v3"`
	Language  string    `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
	Task      string    `json:"task" validate:"oneof=transcribe"`
}

// NewRequest builds a Request with defaults applied.
func NewRequest(audioPath string, model ModelTier, language string) *Request {
	if model == "" {
		model = DefaultTier
	}
	return &Request{
		AudioPath: audioPath,
		Model:     model,
		Language:  language,
		Task:      "transcribe",
	}
}

// RawSegment is a time-bounded span exactly as the engine emitted it:
// untrimmed text, unrounded timestamps in seconds.
type RawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// RawResult is the engine's output before reshaping. Segments keep the
// engine's chronological order; nothing here is validated or re-sorted.
type RawResult struct {
	Text     string       `json:"text"`
	Language string       `json:"language,omitempty"`
	Segments []RawSegment `json:"segments,omitempty"`
}

// EngineType distinguishes where an engine runs.
type EngineType string

const (
	TypeLocal  EngineType = "local"
	TypeRemote EngineType = "remote"
)

// EngineInfo describes an engine's identity and requirements. It backs the
// `a2t engines` listing.
type EngineInfo struct {
	Name             string     `json:"name"`
	DisplayName      string     `json:"display_name"`
	Type             EngineType `json:"type"`
	SupportsTiers    bool       `json:"supports_tiers"`
	RequiresInternet bool       `json:"requires_internet"`
	RequiresAPIKey   bool       `json:"requires_api_key"`
	RequiresBinary   bool       `json:"requires_binary"`
	DefaultModel     string     `json:"default_model,omitempty"`
}
