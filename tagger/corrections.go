package tagger

// chasenTags is a parsed chasen output line, always 4, 5, or 6 columns:
// surface form, reading, base form, parts-of-speech, conjugated type,
// conjugated form. Missing optional columns are the empty string.
type chasenTags [6]string

// knownProblemCorrections maps full 6-column chasen tuples the tagger is
// known to mis-tag onto the corrected tuple. Data-driven so more rules can
// be added without touching parsing code.
//
// The published rule: the tagger tags a standalone な as the copula's
// conjugated form with base form だ, which is technically correct but
// unhelpful for lexical-item lookup — な as a standalone token is almost
// always functioning as its own particle, not an inflected だ.
var knownProblemCorrections = map[chasenTags]chasenTags{
	{"な", "ナ", "だ", "助動詞", "特殊・ダ", "体言接続"}: {"な", "ナ", "な", "助動詞", "特殊・ダ", "体言接続"},
}

// applyKnownProblemCorrections adjusts tags in place for known tagger
// mis-tagging, after the blank-base-form repair has already run.
func applyKnownProblemCorrections(tags chasenTags) chasenTags {
	if corrected, ok := knownProblemCorrections[tags]; ok {
		return corrected
	}
	return tags
}

// repairBlankBaseForm sets the base-form column to the surface-form column
// when the tagger emitted a blank base form for a non-blank surface form.
// This happens rarely, for some proper nouns.
func repairBlankBaseForm(tags chasenTags) chasenTags {
	if tags[0] != "" && tags[2] == "" {
		tags[2] = tags[0]
	}
	return tags
}
