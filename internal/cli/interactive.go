package cli

import "os"

// IsNonInteractive reports whether prompts and the UI should be skipped.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("EMAILPRO_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

// IsInteractive reports whether the session can run the UI.
func IsInteractive() bool {
	return !IsNonInteractive()
}
