package dict

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/az-ai-labs/jlexan/lexerrors"
)

// Store indexes dictionary entries by literal text form and by morpheme
// decomposition. A zero Store is not ready for use; construct one with Load.
type Store struct {
	mu sync.RWMutex

	byTextForm map[string][]Entry
	byDecomp   map[DecompKey][]Entry

	maxTextFormLen int
	maxDecompLen   int

	loaded bool

	sourcePath string
	sourceMod  time.Time
	cachePath  string
}

// Load builds a Store from the JMdict-style XML file at xmlPath, using decomp
// to compute each entry's decomposition. If cachePath is non-empty and holds
// a cache at least as new as xmlPath's modification time, the cache is used
// instead of re-parsing the XML; otherwise the XML is parsed and, if
// cachePath is non-empty, the result is written back to the cache. A failed
// cache write is logged and does not fail Load.
func Load(xmlPath, cachePath string, decomp decomposer) (*Store, error) {
	info, err := os.Stat(xmlPath)
	if err != nil {
		return nil, lexerrors.NewResourceLoadError("dictionary XML", xmlPath, err)
	}

	s := &Store{
		byTextForm: make(map[string][]Entry),
		byDecomp:   make(map[DecompKey][]Entry),
		sourcePath: xmlPath,
		sourceMod:  info.ModTime(),
		cachePath:  cachePath,
	}

	if cachePath != "" {
		if cached, err := loadCache(cachePath, info.ModTime()); err == nil {
			s.rebuildFromDecompIndex(cached)
			s.loaded = true
			return s, nil
		}
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, lexerrors.NewResourceLoadError("dictionary XML", xmlPath, err)
	}
	defer f.Close()

	entries, err := decodeRecords(f, decomp)
	if err != nil {
		return nil, err
	}

	s.index(entries)
	s.loaded = true

	if cachePath != "" {
		decompIndex := make(map[DecompKey][]Entry, len(s.byDecomp))
		for k, v := range s.byDecomp {
			decompIndex[k] = v
		}
		if err := writeCache(cachePath, info.ModTime(), decompIndex); err != nil {
			slog.Warn("dict: cache write failed", "path", cachePath, "err", err)
		}
	}

	return s, nil
}

// index populates byTextForm, byDecomp, and the two max-length scalars from
// entries.
func (s *Store) index(entries []Entry) {
	for _, e := range entries {
		s.byTextForm[e.TextForm] = append(s.byTextForm[e.TextForm], e)
		s.byDecomp[e.Decomp] = append(s.byDecomp[e.Decomp], e)

		if n := len([]rune(e.TextForm)); n > s.maxTextFormLen {
			s.maxTextFormLen = n
		}
		if n := e.Decomp.Len(); n > s.maxDecompLen {
			s.maxDecompLen = n
		}
	}
}

// rebuildFromDecompIndex reconstructs byTextForm and the max-length scalars
// from a loaded decomp_index, the only table persisted to cache.
func (s *Store) rebuildFromDecompIndex(decompIndex map[DecompKey][]Entry) {
	s.byDecomp = decompIndex
	for k, entries := range decompIndex {
		if n := k.Len(); n > s.maxDecompLen {
			s.maxDecompLen = n
		}
		for _, e := range entries {
			s.byTextForm[e.TextForm] = append(s.byTextForm[e.TextForm], e)
			if n := len([]rune(e.TextForm)); n > s.maxTextFormLen {
				s.maxTextFormLen = n
			}
		}
	}
}

// ByTextForm returns every entry whose text form is exactly textForm.
func (s *Store) ByTextForm(textForm string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, lexerrors.NewResourceNotReadyError("dictionary store")
	}
	return s.byTextForm[textForm], nil
}

// ByDecomp returns every entry whose decomposition is exactly key.
func (s *Store) ByDecomp(key DecompKey) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, lexerrors.NewResourceNotReadyError("dictionary store")
	}
	return s.byDecomp[key], nil
}

// MaxTextFormLen returns the rune length of the longest text form in the
// store, used to bound the meta-item finder's sliding window.
func (s *Store) MaxTextFormLen() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return 0, lexerrors.NewResourceNotReadyError("dictionary store")
	}
	return s.maxTextFormLen, nil
}

// MaxDecompLen returns the longest decomposition length, in base forms, of
// any entry in the store.
func (s *Store) MaxDecompLen() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return 0, lexerrors.NewResourceNotReadyError("dictionary store")
	}
	return s.maxDecompLen, nil
}

// Reload re-parses the XML source if its modification time has advanced
// since the last load, swapping the index atomically under the store's
// write lock. It is a no-op if the source is unchanged.
func (s *Store) Reload(decomp decomposer) error {
	info, err := os.Stat(s.sourcePath)
	if err != nil {
		return lexerrors.NewResourceLoadError("dictionary XML", s.sourcePath, err)
	}
	if !info.ModTime().After(s.sourceMod) {
		return nil
	}

	f, err := os.Open(s.sourcePath)
	if err != nil {
		return lexerrors.NewResourceLoadError("dictionary XML", s.sourcePath, err)
	}
	defer f.Close()

	entries, err := decodeRecords(f, decomp)
	if err != nil {
		return err
	}

	next := &Store{
		byTextForm: make(map[string][]Entry),
		byDecomp:   make(map[DecompKey][]Entry),
	}
	next.index(entries)

	s.mu.Lock()
	s.byTextForm = next.byTextForm
	s.byDecomp = next.byDecomp
	s.maxTextFormLen = next.maxTextFormLen
	s.maxDecompLen = next.maxDecompLen
	s.sourceMod = info.ModTime()
	s.mu.Unlock()

	if s.cachePath != "" {
		decompIndex := make(map[DecompKey][]Entry, len(next.byDecomp))
		for k, v := range next.byDecomp {
			decompIndex[k] = v
		}
		if err := writeCache(s.cachePath, info.ModTime(), decompIndex); err != nil {
			slog.Warn("dict: cache write failed", "path", s.cachePath, "err", err)
		}
	}
	return nil
}
