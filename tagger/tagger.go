// Package tagger wraps an external morphological tagger binary (MeCab or a
// compatible chasen-format tagger) and exposes it as a Go API that returns
// base lexical items instead of raw tabular text.
package tagger

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/az-ai-labs/jlexan/lexerrors"
	"github.com/az-ai-labs/jlexan/lexitem"
)

const (
	endOfSectionMarker = "EOS"
	tokenSplitter      = "\t"
	posSplitter        = "-"

	// symbolPartOfSpeech is the Japanese word for "symbol" (kigou), the
	// part-of-speech tag the tagger assigns to punctuation.
	symbolPartOfSpeech = "記号"

	// defaultMaxChunkRunes is the initial Tagger.maxChunkRunes value. Parse
	// does not consult maxChunkRunes: each call hands its whole text to a
	// single tagger invocation.
	defaultMaxChunkRunes = 0
)

// Tagger wraps one external tagger process invocation path. It is NOT safe
// for concurrent Parse calls: it reuses internal scratch buffers across
// calls. Callers needing to parse in parallel must construct one Tagger per
// worker goroutine.
type Tagger struct {
	cfg           Config
	maxChunkRunes int
	buf           bytes.Buffer
}

// New builds a Tagger from cfg.
func New(cfg Config) *Tagger {
	return &Tagger{cfg: cfg, maxChunkRunes: defaultMaxChunkRunes}
}

// WithMaxChunkRunes records n as the Tagger's rune ceiling and returns t
// for chaining. Parse does not read the value, so it does not limit how
// much text one tagger invocation receives.
func (t *Tagger) WithMaxChunkRunes(n int) *Tagger {
	t.maxChunkRunes = n
	return t
}

// Parse returns the base lexical items found in text. Each result FLI has
// exactly one TextPosition and one interpretation of shape
// {source: TAGGER, morph: MorphInterpretation}. textOffset is added to
// every returned position, letting callers parse one block of a larger
// article and report positions relative to the whole article.
func (t *Tagger) Parse(ctx context.Context, text string, textOffset int) ([]lexitem.FoundLexicalItem, error) {
	if text == "" {
		return nil, nil
	}

	out, err := t.invoke(ctx, text)
	if err != nil {
		return nil, err
	}

	lines := parseChasenOutput(out)

	runes := []rune(text)
	cursor := 0
	items := make([]lexitem.FoundLexicalItem, 0, len(lines))
	for _, tags := range lines {
		if len(tags) == 1 && tags[0] == endOfSectionMarker {
			continue
		}
		full, err := normalizeColumns(tags, text)
		if err != nil {
			return nil, err
		}

		surface := full[0]
		cursor, err = advanceCursorToMatch(runes, cursor, surface)
		if err != nil {
			return nil, lexerrors.NewTextAnalysisError(text, err.Error())
		}

		pos := lexitem.TextPosition{Start: textOffset + cursor, Length: len([]rune(surface))}
		interp := interpFromTags(full)
		items = append(items, lexitem.New(full[2], pos, surface, interp))

		cursor += len([]rune(surface))
	}

	return items, nil
}

// invoke runs the configured tagger binary over text and returns its raw
// chasen-format stdout.
func (t *Tagger) invoke(ctx context.Context, text string) (string, error) {
	t.buf.Reset()

	cmd := exec.CommandContext(ctx, t.cfg.BinaryPath, t.cfg.args()...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = &t.buf

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", lexerrors.NewResourceLoadError("tagger binary", t.cfg.BinaryPath, err)
		}
		return "", lexerrors.NewResourceLoadError("tagger invocation", t.cfg.BinaryPath, err)
	}

	return t.buf.String(), nil
}

// parseChasenOutput splits raw chasen output into per-line tag slices,
// dropping blank lines. Lines are not yet validated for column count.
func parseChasenOutput(output string) [][]string {
	rawLines := strings.Split(output, "\n")
	lines := make([][]string, 0, len(rawLines))
	for _, line := range rawLines {
		if line == "" {
			continue
		}
		lines = append(lines, strings.Split(line, tokenSplitter))
	}
	return lines
}

// normalizeColumns validates the column count (4, 5, or 6 depending on
// whether the conjugation columns are present), pads to a fixed 6-column
// chasenTags, and applies the known tag
// corrections in order: blank-base-form repair, then the fixed lookup
// table.
func normalizeColumns(tags []string, text string) (chasenTags, error) {
	switch len(tags) {
	case 4, 5, 6:
	default:
		return chasenTags{}, lexerrors.NewTextAnalysisError(
			text, "unexpected tagger output column count")
	}

	var full chasenTags
	copy(full[:], tags)

	full = repairBlankBaseForm(full)
	full = applyKnownProblemCorrections(full)
	return full, nil
}

// interpFromTags builds the MorphInterpretation + LexicalInterpretation for
// one normalized chasen line. Columns beyond the part-of-speech tuple are
// optional; when absent they are the empty string and left out of the
// MorphInterpretation.
func interpFromTags(tags chasenTags) lexitem.LexicalInterpretation {
	morph := lexitem.MorphInterpretation{
		PartsOfSpeech:  strings.Split(tags[3], posSplitter),
		ConjugatedType: tags[4],
		ConjugatedForm: tags[5],
	}
	return lexitem.NewMorphInterp(morph, lexitem.NewInterpSourceSet(lexitem.Tagger))
}

// IsSymbol reports whether fli is a non-alphanumeric symbol per the
// tagger's own classification: a lexical item all of whose morph
// interpretations carry the symbol part-of-speech tag (記号).
func IsSymbol(fli lexitem.FoundLexicalItem) bool {
	sawMorph := false
	for _, interp := range fli.PossibleInterps {
		if interp.IsDict {
			continue
		}
		sawMorph = true
		if interp.Morph.FirstPartOfSpeech() != symbolPartOfSpeech {
			return false
		}
	}
	return sawMorph
}
