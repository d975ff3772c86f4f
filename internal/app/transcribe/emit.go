package transcribe

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat selects the serialization mode on stdout.
type OutputFormat string

const (
	// FormatJSON emits the full Result as 2-space indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatText emits only the trimmed transcript text.
	FormatText OutputFormat = "text"
)

// ParseOutputFormat converts a CLI string into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatText:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: json, text)", s)
	}
}

// Emit serializes the result to w. JSON mode keeps non-ASCII characters
// literal; text mode prints the transcript followed by one newline.
func Emit(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, result.Text)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
