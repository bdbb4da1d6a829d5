package tagger

import "context"

// Decompose runs textForm through the tagger and returns the ordered base
// forms of the morphemes it splits into. A dictionary text form with no
// internal structure decomposes to a single-element slice equal to itself.
func (t *Tagger) Decompose(textForm string) ([]string, error) {
	items, err := t.Parse(context.Background(), textForm, 0)
	if err != nil {
		return nil, err
	}

	forms := make([]string, 0, len(items))
	for _, item := range items {
		forms = append(forms, item.BaseForm)
	}
	return forms, nil
}
