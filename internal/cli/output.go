package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// PreflightError reports a condition that stops a command before it does
// any work, with guidance for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func printError(out io.Writer, err error) {
	if IsJSONOutput() {
		payload := map[string]string{"error": err.Error()}
		var preflight *PreflightError
		if errors.As(err, &preflight) {
			payload["hint"] = preflight.Hint
			payload["next_step"] = preflight.NextStep
		}
		_ = WriteOutput(out, payload)
		return
	}

	fmt.Fprintf(out, "Error: %v\n", err)
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		if preflight.Hint != "" {
			fmt.Fprintf(out, "Hint: %s\n", preflight.Hint)
		}
		if preflight.NextStep != "" {
			fmt.Fprintf(out, "Try: %s\n", preflight.NextStep)
		}
	}
}
