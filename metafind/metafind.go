// Package metafind finds multi-token dictionary entries ("meta" lexical
// items, as opposed to the tagger's single-morpheme "base" items) by
// sliding a window across a run of base FLIs and looking up the
// concatenation under three different keys.
package metafind

import (
	"github.com/az-ai-labs/jlexan/dict"
	"github.com/az-ai-labs/jlexan/lexitem"
)

// store is the subset of dict.Store (or dict.CachedStore) metafind needs.
// Defined here, rather than imported as a concrete type, so either can be
// passed in.
type store interface {
	ByTextForm(textForm string) ([]dict.Entry, error)
	ByDecomp(key dict.DecompKey) ([]dict.Entry, error)
	MaxTextFormLen() (int, error)
	MaxDecompLen() (int, error)
}

// Find slides a window over base, a list of base FLIs in text order (each
// expected to carry exactly one position and one TAGGER morph
// interpretation, as produced by tagger.Parse), and returns one meta FLI per
// dictionary entry any window's three lookup keys matched.
func Find(s store, base []lexitem.FoundLexicalItem) ([]lexitem.FoundLexicalItem, error) {
	maxTextFormLen, err := s.MaxTextFormLen()
	if err != nil {
		return nil, err
	}
	maxDecompLen, err := s.MaxDecompLen()
	if err != nil {
		return nil, err
	}

	var results []lexitem.FoundLexicalItem

	for i := range base {
		baseFormSum := len([]rune(base[i].BaseForm))
		surfaceSum := len([]rune(base[i].FirstSurfaceForm()))

		for j := i + 1; j < len(base); j++ {
			decompLen := j - i + 1
			baseFormSum += len([]rune(base[j].BaseForm))
			surfaceSum += len([]rune(base[j].FirstSurfaceForm()))

			if !withinLengthBound(decompLen, baseFormSum, surfaceSum, maxDecompLen, maxTextFormLen) {
				break
			}

			window := base[i : j+1]
			found, err := lookupWindow(s, window)
			if err != nil {
				return nil, err
			}
			results = append(results, found...)
		}
	}

	return results, nil
}

// withinLengthBound implements the disjunctive length bound: a window is
// eligible for lookup if any of the three conditions holds.
func withinLengthBound(decompLen, baseFormSum, surfaceSum, maxDecompLen, maxTextFormLen int) bool {
	if decompLen <= maxDecompLen {
		return true
	}
	if baseFormSum <= maxTextFormLen {
		return true
	}
	if surfaceSum <= maxTextFormLen {
		return true
	}
	return false
}

// lookupWindow computes the three lookup keys for window and returns one
// meta FLI per dictionary entry found, unioned across the three key spaces
// preserving first-seen order (decomp, then surface, then base), with each
// entry's interpretation carrying the subset of source tags that matched it.
func lookupWindow(s store, window []lexitem.FoundLexicalItem) ([]lexitem.FoundLexicalItem, error) {
	baseForms := make([]string, len(window))
	var surfaceKey string
	var baseKey string
	for i, b := range window {
		baseForms[i] = b.BaseForm
		surfaceKey += b.FirstSurfaceForm()
		baseKey += b.BaseForm
	}
	decompKey := dict.NewDecompKey(baseForms)

	decompEntries, err := s.ByDecomp(decompKey)
	if err != nil {
		return nil, err
	}
	surfaceEntries, err := s.ByTextForm(surfaceKey)
	if err != nil {
		return nil, err
	}
	baseEntries, err := s.ByTextForm(baseKey)
	if err != nil {
		return nil, err
	}

	if len(decompEntries) == 0 && len(surfaceEntries) == 0 && len(baseEntries) == 0 {
		return nil, nil
	}

	order := make([]string, 0, len(decompEntries)+len(surfaceEntries)+len(baseEntries))
	sources := make(map[string]lexitem.InterpSourceSet, len(order))
	byID := make(map[string]dict.Entry, len(order))

	add := func(entries []dict.Entry, source lexitem.InterpSource) {
		for _, e := range entries {
			if _, ok := byID[e.ID]; !ok {
				order = append(order, e.ID)
				byID[e.ID] = e
			}
			sources[e.ID] = sources[e.ID].Union(lexitem.NewInterpSourceSet(source))
		}
	}
	add(decompEntries, lexitem.DictMorphDecomp)
	add(surfaceEntries, lexitem.DictSurfaceForm)
	add(baseEntries, lexitem.DictBaseForm)

	start := window[0].FoundPositions[0].Start
	length := len([]rune(surfaceKey))
	pos := lexitem.TextPosition{Start: start, Length: length}

	results := make([]lexitem.FoundLexicalItem, 0, len(order))
	for _, id := range order {
		entry := byID[id]
		interp := lexitem.NewDictInterp(entry.ID, sources[id])
		results = append(results, lexitem.New(entry.TextForm, pos, surfaceKey, interp))
	}
	return results, nil
}
