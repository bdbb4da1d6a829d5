package dict

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCacheSize bounds the memoization caches below. Meta-item lookups
// during a single article's analysis revisit a handful of short strings and
// decomp tuples very often (every window a substring participates in), so a
// modest fixed size captures nearly all of the benefit.
const defaultCacheSize = 4096

// CachedStore wraps a Store with in-memory LRU memoization of ByTextForm
// and ByDecomp, for callers doing many repeated lookups against the same
// loaded store (the meta-item finder's sliding window revisits short
// substrings constantly).
type CachedStore struct {
	store *Store

	textFormCache *lru.Cache[string, []Entry]
	decompCache   *lru.Cache[DecompKey, []Entry]
}

// NewCachedStore wraps store with LRU memoization caches of size
// defaultCacheSize.
func NewCachedStore(store *Store) (*CachedStore, error) {
	textFormCache, err := lru.New[string, []Entry](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	decompCache, err := lru.New[DecompKey, []Entry](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &CachedStore{store: store, textFormCache: textFormCache, decompCache: decompCache}, nil
}

// ByTextForm is Store.ByTextForm with LRU memoization.
func (c *CachedStore) ByTextForm(textForm string) ([]Entry, error) {
	if v, ok := c.textFormCache.Get(textForm); ok {
		return v, nil
	}
	entries, err := c.store.ByTextForm(textForm)
	if err != nil {
		return nil, err
	}
	c.textFormCache.Add(textForm, entries)
	return entries, nil
}

// ByDecomp is Store.ByDecomp with LRU memoization.
func (c *CachedStore) ByDecomp(key DecompKey) ([]Entry, error) {
	if v, ok := c.decompCache.Get(key); ok {
		return v, nil
	}
	entries, err := c.store.ByDecomp(key)
	if err != nil {
		return nil, err
	}
	c.decompCache.Add(key, entries)
	return entries, nil
}

// MaxTextFormLen delegates to the wrapped store.
func (c *CachedStore) MaxTextFormLen() (int, error) { return c.store.MaxTextFormLen() }

// MaxDecompLen delegates to the wrapped store.
func (c *CachedStore) MaxDecompLen() (int, error) { return c.store.MaxDecompLen() }
