package dict

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// stubDecomposer decomposes a text form by splitting it into one base form
// per rune, unless an override is registered for that exact text form.
type stubDecomposer struct {
	overrides map[string][]string
}

func (d stubDecomposer) Decompose(textForm string) ([]string, error) {
	if forms, ok := d.overrides[textForm]; ok {
		return forms, nil
	}
	runes := []rune(textForm)
	forms := make([]string, len(runes))
	for i, r := range runes {
		forms[i] = string(r)
	}
	return forms, nil
}

const testXML = `<?xml version="1.0"?>
<JMdict>
<entry>
<ent_seq>1000</ent_seq>
<k_ele><keb>猫</keb><ke_pri>news1</ke_pri></k_ele>
<r_ele><reb>ねこ</reb></r_ele>
<sense><pos>名詞</pos><misc>common</misc></sense>
</entry>
<entry>
<ent_seq>1001</ent_seq>
<k_ele><keb>走る</keb></k_ele>
<r_ele><reb>はしる</reb></r_ele>
<sense><stagk>走る</stagk><pos>動詞</pos></sense>
<sense><stagr>はしる</stagr><pos>動詞</pos><misc>kana-only</misc></sense>
</entry>
</JMdict>`

func writeTestXML(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "dict.xml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test XML: %v", err)
	}
	return path
}

func TestLoadIndexesByTextFormAndDecomp(t *testing.T) {
	dir := t.TempDir()
	path := writeTestXML(t, dir, testXML)

	decomp := stubDecomposer{overrides: map[string][]string{
		"猫":  {"猫"},
		"ねこ": {"猫"},
	}}

	store, err := Load(path, "", decomp)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	entries, err := store.ByTextForm("猫")
	if err != nil {
		t.Fatalf("ByTextForm: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "1000" {
		t.Fatalf("ByTextForm(猫) = %+v, want one entry with ID 1000", entries)
	}
	if len(entries[0].Frequency) != 1 || entries[0].Frequency[0] != "news1" {
		t.Errorf("Frequency = %v, want [news1]", entries[0].Frequency)
	}

	byDecomp, err := store.ByDecomp(NewDecompKey([]string{"猫"}))
	if err != nil {
		t.Fatalf("ByDecomp: %v", err)
	}
	if len(byDecomp) != 2 {
		t.Fatalf("ByDecomp(猫) = %d entries, want 2 (both 猫 and ねこ)", len(byDecomp))
	}
}

func TestLoadProjectsSenseRestrictions(t *testing.T) {
	dir := t.TempDir()
	path := writeTestXML(t, dir, testXML)

	store, err := Load(path, "", stubDecomposer{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	kanji, err := store.ByTextForm("走る")
	if err != nil {
		t.Fatalf("ByTextForm: %v", err)
	}
	if len(kanji) != 1 {
		t.Fatalf("ByTextForm(走る) = %d entries, want 1", len(kanji))
	}
	if containsStr(kanji[0].Misc, "kana-only") {
		t.Errorf("走る entry picked up the reading-restricted sense: %+v", kanji[0])
	}

	kana, err := store.ByTextForm("はしる")
	if err != nil {
		t.Fatalf("ByTextForm: %v", err)
	}
	if len(kana) != 1 || !containsStr(kana[0].Misc, "kana-only") {
		t.Fatalf("はしる entry = %+v, want the kana-only sense applied", kana)
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestLoadRejectsUnknownChildElement(t *testing.T) {
	dir := t.TempDir()
	bad := `<JMdict><entry><ent_seq>1</ent_seq><bogus_field>x</bogus_field></entry></JMdict>`
	path := writeTestXML(t, dir, bad)

	_, err := Load(path, "", stubDecomposer{})
	if err == nil {
		t.Fatal("Load with unknown child element: got nil error, want fatal parse error")
	}
}

func TestLoadRejectsMissingEntSeq(t *testing.T) {
	dir := t.TempDir()
	bad := `<JMdict><entry><k_ele><keb>猫</keb></k_ele></entry></JMdict>`
	path := writeTestXML(t, dir, bad)

	_, err := Load(path, "", stubDecomposer{})
	if err == nil {
		t.Fatal("Load with missing ent_seq: got nil error, want fatal parse error")
	}
}

func TestLoadMissingFileReturnsResourceLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"), "", stubDecomposer{})
	if err == nil {
		t.Fatal("Load of missing file: got nil error")
	}
	if !strings.Contains(err.Error(), "missing.xml") {
		t.Errorf("Error() = %q, want it to name the path", err.Error())
	}
}

func TestAccessorsBeforeLoadFail(t *testing.T) {
	s := &Store{byTextForm: map[string][]Entry{}, byDecomp: map[DecompKey][]Entry{}}

	if _, err := s.ByTextForm("x"); err == nil {
		t.Error("ByTextForm on unloaded store: got nil error")
	}
	if _, err := s.ByDecomp(""); err == nil {
		t.Error("ByDecomp on unloaded store: got nil error")
	}
	if _, err := s.MaxTextFormLen(); err == nil {
		t.Error("MaxTextFormLen on unloaded store: got nil error")
	}
	if _, err := s.MaxDecompLen(); err == nil {
		t.Error("MaxDecompLen on unloaded store: got nil error")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTestXML(t, dir, testXML)
	cachePath := filepath.Join(dir, "dict.cache")

	decomp := stubDecomposer{}

	store1, err := Load(path, cachePath, decomp)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	want, err := store1.MaxTextFormLen()
	if err != nil {
		t.Fatalf("MaxTextFormLen: %v", err)
	}

	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	store2, err := Load(path, cachePath, decomp)
	if err != nil {
		t.Fatalf("second Load (from cache): %v", err)
	}
	got, err := store2.MaxTextFormLen()
	if err != nil {
		t.Fatalf("MaxTextFormLen: %v", err)
	}
	if got != want {
		t.Errorf("MaxTextFormLen after cache load = %d, want %d", got, want)
	}

	entries, err := store2.ByTextForm("猫")
	if err != nil || len(entries) != 1 {
		t.Errorf("ByTextForm(猫) after cache load = %+v, %v", entries, err)
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeTestXML(t, dir, testXML)

	store, err := Load(path, "", stubDecomposer{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := store.ByTextForm("新語"); err != nil {
		t.Fatalf("ByTextForm: %v", err)
	}

	updated := testXML[:len(testXML)-len("</JMdict>")] +
		`<entry><ent_seq>2000</ent_seq><k_ele><keb>新語</keb></k_ele></entry></JMdict>`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewriting XML: %v", err)
	}
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if err := store.Reload(stubDecomposer{}); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	entries, err := store.ByTextForm("新語")
	if err != nil {
		t.Fatalf("ByTextForm after reload: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("ByTextForm(新語) after reload = %d entries, want 1", len(entries))
	}
}

func TestCachedStoreMemoizesLookups(t *testing.T) {
	dir := t.TempDir()
	path := writeTestXML(t, dir, testXML)

	store, err := Load(path, "", stubDecomposer{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cached, err := NewCachedStore(store)
	if err != nil {
		t.Fatalf("NewCachedStore: %v", err)
	}

	first, err := cached.ByTextForm("猫")
	if err != nil {
		t.Fatalf("ByTextForm: %v", err)
	}
	second, err := cached.ByTextForm("猫")
	if err != nil {
		t.Fatalf("ByTextForm (cached): %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("cached ByTextForm returned a different result set: %+v vs %+v", first, second)
	}
}
