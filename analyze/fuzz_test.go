package analyze

import (
	"context"
	"testing"

	"github.com/az-ai-labs/jlexan/lexitem"
)

// FuzzAnalyze exercises Analyze against arbitrary full_text with a tagger
// that echoes each non-empty block back as a single base FLI spanning it,
// checking Analyze never panics and every returned position lands inside
// full_text.
func FuzzAnalyze(f *testing.F) {
	f.Add("")
	f.Add("猫")
	f.Add("猫\n犬")
	f.Add("\n\n\n")
	f.Add("。、")

	f.Fuzz(func(t *testing.T, fullText string) {
		tag := echoTagger{}
		got, err := Analyze(context.Background(), tag, fakeStore{}, lexitem.Article{FullText: fullText})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}

		runes := []rune(fullText)
		for _, fli := range got {
			for _, pos := range fli.FoundPositions {
				if pos.Start < 0 || pos.End() > len(runes) {
					t.Fatalf("position %v out of bounds for %d-rune input", pos, len(runes))
				}
			}
		}
	})
}

// echoTagger returns one base FLI covering the whole block it's given,
// tagged as a generic noun so it survives symbol filtering.
type echoTagger struct{}

func (echoTagger) Parse(_ context.Context, text string, textOffset int) ([]lexitem.FoundLexicalItem, error) {
	if text == "" {
		return nil, nil
	}
	n := len([]rune(text))
	return []lexitem.FoundLexicalItem{
		morphFLI(text, text, lexitem.TextPosition{Start: textOffset, Length: n}, "名詞"),
	}, nil
}
