// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml or create ~/.config/go-gongwen/<name>.yaml")
}

// ForOutputDirectory returns a hint for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingFonts returns a hint when required CJK font families are
// not installed.
func ForMissingFonts(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("install " + strings.Join(missing, ", ") +
		" or override fonts in the config file; Word falls back to a default CJK face otherwise")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
