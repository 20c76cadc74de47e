// Package stringutil provides small string helpers shared by the parser and the prompt sequencer.
package stringutil

import "strings"

// TrimOrDefault trims surrounding whitespace from s and returns fallback when nothing is left.
//
// Examples:
//
//	TrimOrDefault("  my-app ", "up-web-vue")  // returns "my-app"
//	TrimOrDefault("   ", "up-web-vue")        // returns "up-web-vue"
func TrimOrDefault(s, fallback string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return fallback
}

// IsFalsy reports whether a flag value written as --name=value means false.
// The empty string, "false", "0", "no" and "off" are falsy, case-insensitively.
func IsFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "false", "0", "no", "off":
		return true
	}
	return false
}

// ContainsPathSeparator reports whether s contains a forward or backward slash.
func ContainsPathSeparator(s string) bool {
	return strings.ContainsAny(s, `/\`)
}
