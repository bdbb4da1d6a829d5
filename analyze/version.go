package analyze

import (
	"bufio"
	"context"
	"errors"
	"os"
	"regexp"

	"github.com/az-ai-labs/jlexan/lexerrors"
)

var dictionaryCommentPattern = regexp.MustCompile(`<!--\s*dictionary created:\s*(\d{4}-\d{2}-\d{2})\s*-->`)
var changelogReleasePattern = regexp.MustCompile(`^#\s*Release\s+(\d{8})-`)

var errNoVersionComment = errors.New("no dictionary-created comment found")
var errNoReleaseLine = errors.New("no release line found")

// VersionProbe is the subset of *tagger.Tagger version reporting needs.
type VersionProbe interface {
	Version(ctx context.Context) (string, error)
}

// VersionInfo reports the tagger's own version string, the dictionary
// source's creation date (from its leading XML comment), and the
// supplemental dictionary's release date (from the first changelog line
// matching "# Release YYYYMMDD-..."). Any failure is a ResourceLoadError.
type VersionInfo struct {
	Tagger           string
	Dictionary       string
	SupplementalDict string
}

// Probe builds a VersionInfo from a live tagger handle, the dictionary XML
// path, and the supplemental dictionary's changelog path.
func Probe(ctx context.Context, tag VersionProbe, dictPath, changelogPath string) (VersionInfo, error) {
	taggerVersion, err := tag.Version(ctx)
	if err != nil {
		return VersionInfo{}, err
	}

	dictVersion, err := probeDictionaryVersion(dictPath)
	if err != nil {
		return VersionInfo{}, err
	}

	supplementalVersion, err := probeChangelogVersion(changelogPath)
	if err != nil {
		return VersionInfo{}, err
	}

	return VersionInfo{
		Tagger:           taggerVersion,
		Dictionary:       dictVersion,
		SupplementalDict: supplementalVersion,
	}, nil
}

// probeDictionaryVersion scans dictPath line by line for the first comment
// of the form "<!-- dictionary created: YYYY-MM-DD -->" and returns the
// date it captures.
func probeDictionaryVersion(dictPath string) (string, error) {
	f, err := os.Open(dictPath)
	if err != nil {
		return "", lexerrors.NewResourceLoadError("dictionary XML", dictPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := dictionaryCommentPattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", lexerrors.NewResourceLoadError("dictionary XML", dictPath, err)
	}

	return "", lexerrors.NewResourceLoadError("dictionary XML", dictPath, errNoVersionComment)
}

// probeChangelogVersion scans changelogPath line by line for the first
// line of the form "# Release YYYYMMDD-..." and returns the date it
// captures.
func probeChangelogVersion(changelogPath string) (string, error) {
	f, err := os.Open(changelogPath)
	if err != nil {
		return "", lexerrors.NewResourceLoadError("supplemental changelog", changelogPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := changelogReleasePattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", lexerrors.NewResourceLoadError("supplemental changelog", changelogPath, err)
	}

	return "", lexerrors.NewResourceLoadError("supplemental changelog", changelogPath, errNoReleaseLine)
}
