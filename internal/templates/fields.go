package templates

import "strings"

// multilineKeywords mark placeholders that usually take a sentence or more.
var multilineKeywords = []string{
	"Alternative",
	"Action",
	"Point",
	"Suggestion",
	"Priority",
	"Detail",
	"Element",
	"Option",
}

// IsMultiline reports whether a placeholder should be edited as a multi-line field.
func IsMultiline(name string) bool {
	for _, keyword := range multilineKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// InputHint returns the prompt shown in an empty field.
func InputHint(name string) string {
	return "Enter " + strings.ToLower(name) + "..."
}
