package engine

import (
	"testing"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    ModelTier
		wantErr bool
	}{
		{"", TierBase, false},
		{"tiny", TierTiny, false},
		{"base", TierBase, false},
		{"small", TierSmall, false},
		{"medium", TierMedium, false},
		{"large", TierLarge, false},
		{"large-v2", TierLargeV2, false},
		{"large-v3", TierLargeV3, false},
		{"LARGE-V3", TierLargeV3, false},
		{"huge", "", true},
		{"large-v4", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTier(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTier(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTier(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRequestDefaults(t *testing.T) {
	request := NewRequest("episode.mp3", "", "")

	if request.Model != TierBase {
		t.Errorf("expected default tier %q, got %q", TierBase, request.Model)
	}
	if request.Task != "transcribe" {
		t.Errorf("expected task transcribe, got %q", request.Task)
	}
	if request.Language != "" {
		t.Errorf("expected empty language for auto-detection, got %q", request.Language)
	}
}
