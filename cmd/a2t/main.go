package main

import (
	"fmt"
	"os"

	"podcast-whisper/cmd/a2t/cmd"
	"podcast-whisper/internal/config"

	// Import engines to register them
	_ "podcast-whisper/internal/app/engine/openaiapi"
	_ "podcast-whisper/internal/app/engine/whispercpp"
	_ "podcast-whisper/internal/app/engine/whisperserver"
)

func main() {
	// Environment problems are warnings, not fatal: engines that need a
	// key fail with a remediation hint when actually selected.
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
