package lexitem

import "strings"

// InterpSource identifies which lookup produced a LexicalInterpretation.
// A single interpretation can carry more than one source, so InterpSource
// values are combined into an InterpSourceSet rather than used alone.
type InterpSource uint8

const (
	// Tagger marks an interpretation produced directly by the
	// morphological tagger.
	Tagger InterpSource = 1 << iota
	// DictBaseForm marks a dictionary entry matched by concatenated base
	// forms.
	DictBaseForm
	// DictSurfaceForm marks a dictionary entry matched by concatenated
	// surface forms.
	DictSurfaceForm
	// DictMorphDecomp marks a dictionary entry matched by tagger
	// decomposition.
	DictMorphDecomp
)

func (s InterpSource) String() string {
	switch s {
	case Tagger:
		return "TAGGER"
	case DictBaseForm:
		return "DICT_BASE_FORM"
	case DictSurfaceForm:
		return "DICT_SURFACE_FORM"
	case DictMorphDecomp:
		return "DICT_MORPH_DECOMP"
	default:
		return "UNKNOWN"
	}
}

// InterpSourceSet is a set of InterpSource values, represented as a
// bitmask since the set of possible sources is small and fixed.
type InterpSourceSet uint8

// NewInterpSourceSet builds a set from individual sources.
func NewInterpSourceSet(sources ...InterpSource) InterpSourceSet {
	var set InterpSourceSet
	for _, s := range sources {
		set |= InterpSourceSet(s)
	}
	return set
}

// Has reports whether source is a member of the set.
func (s InterpSourceSet) Has(source InterpSource) bool {
	return s&InterpSourceSet(source) != 0
}

// Union returns the set containing the members of both s and other.
func (s InterpSourceSet) Union(other InterpSourceSet) InterpSourceSet {
	return s | other
}

// String renders the set members in a fixed, deterministic order so tests
// can compare formatted output directly. The order here is an
// implementation choice, not a guarantee; callers comparing two sets
// should do so as sets, not by this string.
func (s InterpSourceSet) String() string {
	var parts []string
	for _, src := range []InterpSource{Tagger, DictBaseForm, DictSurfaceForm, DictMorphDecomp} {
		if s.Has(src) {
			parts = append(parts, src.String())
		}
	}
	return strings.Join(parts, "+")
}

// MorphInterpretation is the tagger's reading of one token: an ordered
// part-of-speech tuple (1-4 levels deep, e.g. noun -> proper -> person) plus
// optional conjugation tags.
type MorphInterpretation struct {
	PartsOfSpeech  []string
	ConjugatedType string // empty when not applicable
	ConjugatedForm string // empty when not applicable
}

// key returns a canonical string uniquely identifying the tuple, used to
// dedup MorphInterpretations during reduction.
func (m MorphInterpretation) key() string {
	return strings.Join(m.PartsOfSpeech, "-") + "|" + m.ConjugatedType + "|" + m.ConjugatedForm
}

// FirstPartOfSpeech returns the top-level part-of-speech tag, or "" if none
// was recorded.
func (m MorphInterpretation) FirstPartOfSpeech() string {
	if len(m.PartsOfSpeech) == 0 {
		return ""
	}
	return m.PartsOfSpeech[0]
}

// LexicalInterpretation is a sum of two shapes: either a morphological
// interpretation from the tagger, or a reference to a dictionary entry by
// id. Exactly one of Morph or DictEntryID is meaningful at a time; which one
// is indicated by IsDict.
type LexicalInterpretation struct {
	IsDict      bool
	Morph       MorphInterpretation
	DictEntryID string
	Sources     InterpSourceSet
}

// NewMorphInterp builds a morph-shaped interpretation.
func NewMorphInterp(morph MorphInterpretation, sources InterpSourceSet) LexicalInterpretation {
	return LexicalInterpretation{Morph: morph, Sources: sources}
}

// NewDictInterp builds a dictionary-shaped interpretation.
func NewDictInterp(entryID string, sources InterpSourceSet) LexicalInterpretation {
	return LexicalInterpretation{IsDict: true, DictEntryID: entryID, Sources: sources}
}

// key returns the identity used to dedup interpretations during reduction:
// dictionary interpretations dedup by entry id, morph interpretations dedup
// by their full tuple.
func (i LexicalInterpretation) key() string {
	if i.IsDict {
		return "dict:" + i.DictEntryID
	}
	return "morph:" + i.Morph.key()
}
