package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"podcast-whisper/cmd/a2t/cmd/engines"
	"podcast-whisper/cmd/a2t/cmd/transcribe"
	"podcast-whisper/cmd/a2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Transcribe podcast audio to text with a Whisper engine",
	Long: `Transcribe a single audio file to text using a Whisper-family engine.

- Pick an engine: local whisper.cpp, a self-hosted whisper-server, or the OpenAI API
- Results are printed to stdout as indented JSON or plain text
- Progress messages go to stderr so stdout stays machine-readable`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(engines.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
