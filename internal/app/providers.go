package app

import (
	"go.uber.org/zap"

	"podcast-whisper/internal/app/engine"
	"podcast-whisper/internal/app/logging"
	"podcast-whisper/internal/config"
)

// provideLogger builds the CLI logger. All log output goes to stderr.
func provideLogger() *zap.Logger {
	return logging.MustNewLogger(false)
}

// provideSettings loads the optional YAML settings file.
func provideSettings() (*config.Settings, error) {
	return config.LoadSettings(config.SettingsPath())
}

// provideEngine opens the selected engine with its configured settings.
// An empty engineName falls back to the config file, then the default.
func provideEngine(settings *config.Settings, engineName string) (engine.Engine, error) {
	name := settings.EngineName(engineName)
	return engine.Open(name, settings.EngineSettings(name))
}
