package whispercpp

import (
	"podcast-whisper/internal/app/engine"
)

func init() {
	engine.Register("whispercpp", func(settings map[string]interface{}) (engine.Engine, error) {
		return NewFromSettings(settings)
	})
}
