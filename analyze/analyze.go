// Package analyze orchestrates the tagger and meta-item finder over a whole
// article: splitting it into newline-delimited blocks, running both passes
// per block, dropping symbol-only items, and reducing the result.
package analyze

import (
	"context"
	"strings"

	"github.com/az-ai-labs/jlexan/dict"
	"github.com/az-ai-labs/jlexan/lexitem"
	"github.com/az-ai-labs/jlexan/metafind"
	"github.com/az-ai-labs/jlexan/tagger"
)

// Tagger is the subset of *tagger.Tagger the orchestrator calls.
type Tagger interface {
	Parse(ctx context.Context, text string, textOffset int) ([]lexitem.FoundLexicalItem, error)
}

// Store is the subset of *dict.Store (or *dict.CachedStore) the orchestrator
// and meta-item finder need.
type Store interface {
	ByTextForm(textForm string) ([]dict.Entry, error)
	ByDecomp(key dict.DecompKey) ([]dict.Entry, error)
	MaxTextFormLen() (int, error)
	MaxDecompLen() (int, error)
}

// Analyze runs the full pipeline over article.FullText and returns the
// reduced list of found lexical items.
func Analyze(ctx context.Context, tag Tagger, store Store, article lexitem.Article) ([]lexitem.FoundLexicalItem, error) {
	blocks := strings.Split(article.FullText, "\n")

	var all []lexitem.FoundLexicalItem
	offset := 0

	for _, block := range blocks {
		if block == "" {
			offset++
			continue
		}

		base, err := tag.Parse(ctx, block, offset)
		if err != nil {
			return nil, err
		}

		meta, err := metafind.Find(store, base)
		if err != nil {
			return nil, err
		}

		blockItems := make([]lexitem.FoundLexicalItem, 0, len(base)+len(meta))
		blockItems = append(blockItems, base...)
		blockItems = append(blockItems, meta...)

		for _, item := range blockItems {
			if tagger.IsSymbol(item) {
				continue
			}
			all = append(all, item)
		}

		offset += len([]rune(block)) + 1
	}

	return lexitem.Reduce(all), nil
}
