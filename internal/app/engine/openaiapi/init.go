package openaiapi

import (
	"podcast-whisper/internal/app/engine"
)

func init() {
	engine.Register("openai", func(settings map[string]interface{}) (engine.Engine, error) {
		return NewFromSettings(settings)
	})
}
