package stringutils

import (
	"regexp"
	"strings"
)

var (
	reThink  = regexp.MustCompile(`(?s)<think>.*?</think>`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// Truncate shortens a string to at most n characters, adding "..." if it
// was truncated.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// StripThink removes <think>…</think> blocks that some models embed in
// their replies.
func StripThink(s string) string {
	return reThink.ReplaceAllString(s, "")
}

// Preview collapses a string onto a single line and truncates it to at
// most n characters. Useful for progress output.
func Preview(s string, n int) string {
	return Truncate(strings.TrimSpace(reSpaces.ReplaceAllString(s, " ")), n)
}
