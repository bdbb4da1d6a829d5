// Package kananorm folds halfwidth katakana and fullwidth ASCII/digits to
// their normal-width forms, ahead of tagger or dictionary lookup. Text
// pulled from legacy EUC-JP/Shift-JIS-sourced article HTML commonly mixes
// widths in ways that otherwise identical words fail to match on.
//
// All functions are safe for concurrent use by multiple goroutines.
package kananorm

import "strings"

// maxInputBytes bounds Normalize the way normalize.Normalize bounds its own
// input; inputs beyond this are returned unchanged rather than processed.
const maxInputBytes = 1 << 20 // 1 MiB

// Normalize folds every fullwidth ASCII/digit and halfwidth katakana rune in
// s to its normal-width form. Runes with no width-folding rule pass through
// unchanged. Returns s unchanged for empty or oversized input.
func Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}

	needsFold := false
	for _, r := range s {
		if _, ok := widthFold(r); ok {
			needsFold = true
			break
		}
	}
	if !needsFold {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := widthFold(r); ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// widthFold returns the normal-width replacement for r, and whether one
// applies. Every replacement is a single rune; halfwidth voicing marks fold
// on their own rather than combining with the preceding kana.
func widthFold(r rune) (string, bool) {
	if s, ok := fullwidthASCIIFold(r); ok {
		return s, true
	}
	if s, ok := halfwidthKatakanaFold(r); ok {
		return s, true
	}
	return "", false
}

// fullwidthASCIIFold maps U+FF01-U+FF5E (fullwidth ASCII variants) to their
// plain ASCII equivalents, and the fullwidth space U+3000 to a normal space.
func fullwidthASCIIFold(r rune) (string, bool) {
	switch {
	case r == 0x3000:
		return " ", true
	case r >= 0xFF01 && r <= 0xFF5E:
		return string(rune(r - 0xFEE0)), true
	default:
		return "", false
	}
}

// halfwidthKatakanaFold maps a single halfwidth katakana rune (U+FF66-U+FF9D)
// to its plain fullwidth equivalent. Halfwidth voicing marks (U+FF9E
// dakuten, U+FF9F handakuten) fold to their standalone fullwidth mark forms
// (゛゜) independently rather than combining into the preceding kana — a
// halfwidth ガ is two runes (カ, ゛) both before and after this fold.
func halfwidthKatakanaFold(r rune) (string, bool) {
	if s, ok := halfwidthKatakanaTable[r]; ok {
		return s, true
	}
	return "", false
}
