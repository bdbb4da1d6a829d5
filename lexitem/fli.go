package lexitem

// FoundLexicalItem (FLI) is one lexical item found in an article: the
// canonical dictionary form, every position it was found at, and every
// interpretation it could carry.
//
// Invariants:
//  1. FoundPositions and PossibleInterps are both non-empty.
//  2. Positions within a single FLI are sorted by Start and never overlap
//     (this holds for freshly produced base/meta FLIs; Reduce deliberately
//     relaxes it across merged duplicates, see Reduce doc).
//  3. After Reduce, no two FLIs in a result share BaseForm.
type FoundLexicalItem struct {
	BaseForm        string
	FoundPositions  []TextPosition
	PossibleInterps []LexicalInterpretation

	// surfaceForms caches, for a position, the literal article substring
	// when it differs from BaseForm. Positions not present here are
	// understood to read literally as BaseForm.
	surfaceForms map[TextPosition]string
}

// New builds a single-position, single-interpretation FLI. surface is the
// literal text found at pos; pass it even when equal to baseForm, New only
// retains it if it differs.
func New(baseForm string, pos TextPosition, surface string, interp LexicalInterpretation) FoundLexicalItem {
	fli := FoundLexicalItem{
		BaseForm:        baseForm,
		FoundPositions:  []TextPosition{pos},
		PossibleInterps: []LexicalInterpretation{interp},
	}
	if surface != baseForm {
		fli.surfaceForms = map[TextPosition]string{pos: surface}
	}
	return fli
}

// SurfaceFormAt returns the literal text found at pos, which is BaseForm
// unless a differing surface form was cached for that exact position.
func (f FoundLexicalItem) SurfaceFormAt(pos TextPosition) string {
	if f.surfaceForms != nil {
		if s, ok := f.surfaceForms[pos]; ok {
			return s
		}
	}
	return f.BaseForm
}

// FirstSurfaceForm returns the literal text at the FLI's first position.
// Used by the meta-item finder to build the surface-form lookup key.
func (f FoundLexicalItem) FirstSurfaceForm() string {
	if len(f.FoundPositions) == 0 {
		return f.BaseForm
	}
	return f.SurfaceFormAt(f.FoundPositions[0])
}

// mergeSurfaceForms returns a new map holding the surface-form cache entries
// of both f and other (other's win on the same position), or nil when
// neither has any; used when merging FLIs during Reduce.
func (f FoundLexicalItem) mergeSurfaceForms(other FoundLexicalItem) map[TextPosition]string {
	if len(f.surfaceForms) == 0 && len(other.surfaceForms) == 0 {
		return nil
	}
	merged := make(map[TextPosition]string, len(f.surfaceForms)+len(other.surfaceForms))
	for k, v := range f.surfaceForms {
		merged[k] = v
	}
	for k, v := range other.surfaceForms {
		merged[k] = v
	}
	return merged
}

// Reduce groups items by BaseForm, concatenating FoundPositions (preserving
// the document order items were supplied in, and preserving duplicates,
// since a meta lookup and a base lookup can legitimately report overlapping
// hits) and unioning PossibleInterps (deduped by dictionary-entry id or
// morph tuple, with interp sources merged set-wise).
//
// Callers must supply items in document order; Reduce does not re-sort by
// position, only preserves the order given.
func Reduce(items []FoundLexicalItem) []FoundLexicalItem {
	order := make([]string, 0, len(items))
	groups := make(map[string]FoundLexicalItem, len(items))

	for _, item := range items {
		existing, ok := groups[item.BaseForm]
		if !ok {
			groups[item.BaseForm] = item
			order = append(order, item.BaseForm)
			continue
		}
		groups[item.BaseForm] = mergeInto(existing, item)
	}

	reduced := make([]FoundLexicalItem, 0, len(order))
	for _, baseForm := range order {
		reduced = append(reduced, groups[baseForm])
	}
	return reduced
}

// mergeInto merges b into a, per Reduce's contract.
func mergeInto(a, b FoundLexicalItem) FoundLexicalItem {
	merged := FoundLexicalItem{
		BaseForm:       a.BaseForm,
		FoundPositions: append(append([]TextPosition{}, a.FoundPositions...), b.FoundPositions...),
	}
	merged.surfaceForms = a.mergeSurfaceForms(b)
	merged.PossibleInterps = unionInterps(a.PossibleInterps, b.PossibleInterps)
	return merged
}

// unionInterps dedups interpretations by key, merging interp_sources
// set-wise for duplicates, preserving first-seen order.
func unionInterps(a, b []LexicalInterpretation) []LexicalInterpretation {
	order := make([]string, 0, len(a)+len(b))
	byKey := make(map[string]LexicalInterpretation, len(a)+len(b))

	add := func(interp LexicalInterpretation) {
		k := interp.key()
		existing, ok := byKey[k]
		if !ok {
			byKey[k] = interp
			order = append(order, k)
			return
		}
		existing.Sources = existing.Sources.Union(interp.Sources)
		byKey[k] = existing
	}

	for _, interp := range a {
		add(interp)
	}
	for _, interp := range b {
		add(interp)
	}

	result := make([]LexicalInterpretation, 0, len(order))
	for _, k := range order {
		result = append(result, byKey[k])
	}
	return result
}
