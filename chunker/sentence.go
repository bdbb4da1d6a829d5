package chunker

import (
	"unicode/utf8"

	"github.com/az-ai-labs/jlexan/sentsplit"
)

// BySentence groups sentences into chunks up to size runes, never splitting
// a sentence across two chunks. Sentences are detected via sentsplit.Split.
//
// A single sentence exceeding size is emitted as its own chunk (size is a
// target, not a hard cap). Original inter-sentence text is preserved.
//
// Returns nil for empty text or size <= 0.
func BySentence(text string, size int) []Chunk {
	if text == "" || size <= 0 {
		return nil
	}
	return bySentence(text, size)
}

func bySentence(text string, size int) []Chunk {
	sentences := sentsplit.Split(text)
	if len(sentences) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, len(sentences)/2+1)
	groupStart := 0

	for groupStart < len(sentences) && len(chunks) < maxChunks {
		groupEnd := groupStart
		runeCount := 0

		for groupEnd < len(sentences) {
			sentRunes := utf8.RuneCountInString(sentences[groupEnd].Text)
			if runeCount > 0 && runeCount+sentRunes > size {
				break
			}
			runeCount += sentRunes
			groupEnd++
		}

		if groupEnd == groupStart {
			groupEnd = groupStart + 1
		}

		var group string
		for _, s := range sentences[groupStart:groupEnd] {
			group += s.Text
		}

		chunks = append(chunks, Chunk{
			Text:  group,
			Start: sentences[groupStart].Start,
			End:   sentences[groupEnd-1].End,
			Index: len(chunks),
		})

		groupStart = groupEnd
	}

	return chunks
}
