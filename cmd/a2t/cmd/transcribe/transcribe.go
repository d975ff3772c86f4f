package transcribe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"podcast-whisper/internal/app"
	"podcast-whisper/internal/app/engine"
	"podcast-whisper/internal/app/transcribe"
)

var (
	modelName  string
	language   string
	outputName string
	engineName string
	timeout    time.Duration
)

func init() {
	Cmd.Flags().StringVarP(&modelName, "model", "m", "base",
		"Whisper model tier (tiny, base, small, medium, large, large-v2, large-v3)")
	Cmd.Flags().StringVarP(&language, "language", "l", "",
		"Language code (e.g. 'en'). Auto-detect if not specified")
	Cmd.Flags().StringVarP(&outputName, "output", "o", "json",
		"Output format (json or text)")
	Cmd.Flags().StringVarP(&engineName, "engine", "e", "",
		"Transcription engine (default from config file, else whispercpp)")
	Cmd.Flags().DurationVar(&timeout, "timeout", 0,
		"Abort if transcription takes longer than this (0 = no limit)")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio_path>",
	Short: "Transcribe one audio file and print the result to stdout",
	Long: `Transcribe one audio file and print the result to stdout

- The whole file is transcribed in one blocking call; there is no streaming
- json output carries text, language, duration and per-segment timestamps
- text output is just the trimmed transcript`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		audioPath := args[0]

		tier, err := engine.ParseTier(modelName)
		if err != nil {
			fail(audioPath, err)
		}
		format, err := transcribe.ParseOutputFormat(outputName)
		if err != nil {
			fail(audioPath, err)
		}

		transcriber, err := app.InitializeTranscriber(engineName)
		if err != nil {
			fail(audioPath, err)
		}

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		result, err := transcriber.Transcribe(ctx, engine.NewRequest(audioPath, tier, language))
		if err != nil {
			fail(audioPath, err)
		}

		if err := transcribe.Emit(os.Stdout, result, format); err != nil {
			fail(audioPath, err)
		}
	},
}

// fail reports one human-readable line on stderr and exits 1. Nothing is
// ever written to stdout on failure.
func fail(audioPath string, err error) {
	switch engine.CodeOf(err) {
	case engine.CodeAudioNotFound:
		fmt.Fprintf(os.Stderr, "Error: Audio file not found: %s\n", audioPath)
	case engine.CodeEngineUnavailable:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := engine.HintOf(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error during transcription: %v\n", err)
	}
	os.Exit(1)
}
