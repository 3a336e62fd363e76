package common

import "strings"

// UnknownStr is rendered by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// NormalizeName replaces class-file internal separators ('/') with '.'.
// Applying it twice is a no-op.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// NormalizeNames normalizes every element into a new slice.
// A nil input yields an empty, non-nil slice.
func NormalizeNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = NormalizeName(n)
	}

	return out
}
