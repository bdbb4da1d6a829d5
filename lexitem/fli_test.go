package lexitem

import (
	"reflect"
	"testing"
)

func TestFoundLexicalItemSurfaceForm(t *testing.T) {
	t.Parallel()

	pos := TextPosition{Start: 0, Length: 2}
	fli := New("食べる", pos, "食べ", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"動詞"}}, NewInterpSourceSet(Tagger)))

	if got := fli.SurfaceFormAt(pos); got != "食べ" {
		t.Errorf("SurfaceFormAt = %q, want %q", got, "食べ")
	}
	if got := fli.FirstSurfaceForm(); got != "食べ" {
		t.Errorf("FirstSurfaceForm = %q, want %q", got, "食べ")
	}
}

func TestFoundLexicalItemSurfaceFormNotCachedWhenEqual(t *testing.T) {
	t.Parallel()

	pos := TextPosition{Start: 0, Length: 1}
	fli := New("猫", pos, "猫", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger)))

	if fli.surfaceForms != nil {
		t.Errorf("surfaceForms should stay nil when surface equals base form, got %v", fli.surfaceForms)
	}
	if got := fli.FirstSurfaceForm(); got != "猫" {
		t.Errorf("FirstSurfaceForm = %q, want %q", got, "猫")
	}
}

func TestReduceMergesDuplicateBaseForms(t *testing.T) {
	t.Parallel()

	posA := TextPosition{Start: 0, Length: 1}
	posB := TextPosition{Start: 10, Length: 1}

	a := New("猫", posA, "猫", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger)))
	b := New("猫", posB, "猫", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger)))

	reduced := Reduce([]FoundLexicalItem{a, b})
	if len(reduced) != 1 {
		t.Fatalf("len(reduced) = %d, want 1", len(reduced))
	}
	want := []TextPosition{posA, posB}
	if !reflect.DeepEqual(reduced[0].FoundPositions, want) {
		t.Errorf("FoundPositions = %v, want %v (document order preserved)", reduced[0].FoundPositions, want)
	}
	if len(reduced[0].PossibleInterps) != 1 {
		t.Fatalf("len(PossibleInterps) = %d, want 1 (identical interps dedup)", len(reduced[0].PossibleInterps))
	}
}

func TestReducePreservesDuplicatePositionsFromOverlappingMetaAndBase(t *testing.T) {
	t.Parallel()

	pos := TextPosition{Start: 0, Length: 2}
	base := New("食べ物", pos, "食べ物", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger)))
	meta := New("食べ物", pos, "食べ物", NewDictInterp("1000001", NewInterpSourceSet(DictMorphDecomp)))

	reduced := Reduce([]FoundLexicalItem{base, meta})
	if len(reduced) != 1 {
		t.Fatalf("len(reduced) = %d, want 1", len(reduced))
	}
	if len(reduced[0].FoundPositions) != 2 {
		t.Errorf("len(FoundPositions) = %d, want 2 (overlapping hits both retained)", len(reduced[0].FoundPositions))
	}
	if len(reduced[0].PossibleInterps) != 2 {
		t.Errorf("len(PossibleInterps) = %d, want 2 (distinct interp kinds both retained)", len(reduced[0].PossibleInterps))
	}
}

func TestReduceUnionsInterpSources(t *testing.T) {
	t.Parallel()

	pos := TextPosition{Start: 0, Length: 2}
	a := New("食べ物", pos, "食べ物", NewDictInterp("1000001", NewInterpSourceSet(DictMorphDecomp)))
	b := New("食べ物", pos, "食べ物", NewDictInterp("1000001", NewInterpSourceSet(DictSurfaceForm)))

	reduced := Reduce([]FoundLexicalItem{a, b})
	if len(reduced[0].PossibleInterps) != 1 {
		t.Fatalf("len(PossibleInterps) = %d, want 1 (same entry id dedups)", len(reduced[0].PossibleInterps))
	}
	sources := reduced[0].PossibleInterps[0].Sources
	if !sources.Has(DictMorphDecomp) || !sources.Has(DictSurfaceForm) {
		t.Errorf("Sources = %v, want both DICT_MORPH_DECOMP and DICT_SURFACE_FORM", sources)
	}
}

func TestReduceNoDuplicateBaseForms(t *testing.T) {
	t.Parallel()

	items := []FoundLexicalItem{
		New("猫", TextPosition{Start: 0, Length: 1}, "猫", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger))),
		New("犬", TextPosition{Start: 2, Length: 1}, "犬", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger))),
		New("猫", TextPosition{Start: 5, Length: 1}, "猫", NewMorphInterp(MorphInterpretation{PartsOfSpeech: []string{"名詞"}}, NewInterpSourceSet(Tagger))),
	}

	reduced := Reduce(items)
	seen := map[string]bool{}
	for _, fli := range reduced {
		if seen[fli.BaseForm] {
			t.Fatalf("base form %q appears in more than one FLI after reduce", fli.BaseForm)
		}
		seen[fli.BaseForm] = true
	}
	if len(reduced) != 2 {
		t.Fatalf("len(reduced) = %d, want 2", len(reduced))
	}
}
