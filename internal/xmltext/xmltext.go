// Package xmltext cleans up text decoded from XML element content:
// collapsing the whitespace line-wrapping common in pretty-printed
// dictionary source files, mirroring azcase's small single-purpose rune
// transforms.
package xmltext

import "strings"

// Clean trims leading/trailing whitespace and collapses any internal run of
// whitespace (including the newlines a pretty-printed XML file wraps text
// content with) to a single space.
func Clean(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// CleanAll applies Clean to every string in ss, returning a new slice.
func CleanAll(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = Clean(s)
	}
	return out
}
