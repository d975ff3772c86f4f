package whisperserver

import (
	"podcast-whisper/internal/app/engine"
)

func init() {
	engine.Register("whisperserver", func(settings map[string]interface{}) (engine.Engine, error) {
		return NewFromSettings(settings)
	})
}
