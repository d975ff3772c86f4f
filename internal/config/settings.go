package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultEngineName is used when neither the CLI nor the config file
// selects an engine.
const DefaultEngineName = "whispercpp"

// Settings is the optional YAML configuration for engines. It lives at
// $A2T_CONFIG or ~/.a2t.yaml; a missing file yields zero-value settings.
type Settings struct {
	DefaultEngine string                            `yaml:"default_engine,omitempty"`
	Engines       map[string]map[string]interface{} `yaml:"engines,omitempty"`
}

// SettingsPath resolves the config file location.
func SettingsPath() string {
	if path := os.Getenv("A2T_CONFIG"); path != "" {
		return os.ExpandEnv(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".a2t.yaml")
}

// LoadSettings reads the YAML settings file. A missing file is not an
// error: every setting has a workable default or environment fallback.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	settings.expandEnvironmentVariables()
	return settings, nil
}

// EngineName returns the engine to use, preferring the explicit override.
func (s *Settings) EngineName(override string) string {
	if override != "" {
		return override
	}
	if s.DefaultEngine != "" {
		return s.DefaultEngine
	}
	return DefaultEngineName
}

// EngineSettings returns the settings block for one engine, never nil.
func (s *Settings) EngineSettings(name string) map[string]interface{} {
	if block, ok := s.Engines[name]; ok && block != nil {
		return block
	}
	return map[string]interface{}{}
}

// expandEnvironmentVariables expands ${VAR} references in string values so
// secrets can stay out of the config file.
func (s *Settings) expandEnvironmentVariables() {
	for _, block := range s.Engines {
		for key, value := range block {
			if str, ok := value.(string); ok {
				block[key] = os.ExpandEnv(str)
			}
		}
	}
}
