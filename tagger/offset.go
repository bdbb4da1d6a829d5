package tagger

import "fmt"

// advanceCursorToMatch scans forward from cursor until the rune slice at
// cursor equals surface. The tagger silently drops some whitespace, so the
// adapter must re-locate each token in the original text rather than trust
// a running byte count.
func advanceCursorToMatch(runes []rune, cursor int, surface string) (int, error) {
	surfaceRunes := []rune(surface)
	n := len(surfaceRunes)
	if n == 0 {
		return cursor, nil
	}

	for cursor+n <= len(runes) {
		if runesEqual(runes[cursor:cursor+n], surfaceRunes) {
			return cursor, nil
		}
		cursor++
	}

	return 0, fmt.Errorf("could not align tagger token %q starting from offset %d", surface, cursor)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
