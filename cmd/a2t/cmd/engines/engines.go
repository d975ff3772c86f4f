package engines

import (
	"fmt"

	"github.com/spf13/cobra"

	"podcast-whisper/internal/app/engine"
	"podcast-whisper/internal/config"
)

// Cmd represents the engines command
var Cmd = &cobra.Command{
	Use:   "engines",
	Short: "List available transcription engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(config.SettingsPath())
		if err != nil {
			return err
		}
		defaultName := settings.EngineName("")

		for _, name := range engine.Names() {
			eng, err := engine.Open(name, settings.EngineSettings(name))
			if err != nil {
				fmt.Printf("%-15s (not configured: %v)\n", name, err)
				continue
			}

			info := eng.Info()
			marker := " "
			if name == defaultName {
				marker = "*"
			}
			status := "ready"
			if err := eng.Validate(); err != nil {
				status = "unavailable"
			}
			fmt.Printf("%s %-15s %-28s %-7s %s\n", marker, name, info.DisplayName, info.Type, status)
		}
		return nil
	},
}
