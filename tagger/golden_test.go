package tagger

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/az-ai-labs/jlexan/lexitem"
)

// fakeChasenScript writes an executable shell script to dir that ignores
// its stdin and prints chasenOutput, standing in for a real mecab install
// in environments without one.
func fakeChasenScript(t *testing.T, dir, chasenOutput string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tagger script requires a POSIX shell")
	}

	path := filepath.Join(dir, "fake-mecab.sh")
	script := "#!/bin/sh\ncat <<'EOF'\n" + chasenOutput + "EOF\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake tagger script: %v", err)
	}
	return path
}

func TestParseWhitespaceAlignment(t *testing.T) {
	t.Parallel()

	chasenOutput := "猫\tネコ\t猫\t名詞-一般\n" +
		"が\tガ\tが\t助詞-格助詞-一般\n" +
		"走る\tハシル\t走る\t動詞-自立\t五段・ラ行\t基本形\n" +
		"EOS\n"

	bin := fakeChasenScript(t, t.TempDir(), chasenOutput)
	tg := New(Config{BinaryPath: bin})

	items, err := tg.Parse(t.Context(), "猫 が 走る", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	wantStarts := []int{0, 2, 4}
	for i, want := range wantStarts {
		if got := items[i].FoundPositions[0].Start; got != want {
			t.Errorf("items[%d].Start = %d, want %d", i, got, want)
		}
	}
}

func TestParseAppliesTextOffset(t *testing.T) {
	t.Parallel()

	chasenOutput := "猫\tネコ\t猫\t名詞-一般\nEOS\n"
	bin := fakeChasenScript(t, t.TempDir(), chasenOutput)
	tg := New(Config{BinaryPath: bin})

	items, err := tg.Parse(t.Context(), "猫", 100)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(items) != 1 || items[0].FoundPositions[0].Start != 100 {
		t.Fatalf("items = %+v, want single item starting at 100", items)
	}
}

func TestParseTagCorrectionRule(t *testing.T) {
	t.Parallel()

	chasenOutput := "な\tナ\tだ\t助動詞\t特殊・ダ\t体言接続\nEOS\n"
	bin := fakeChasenScript(t, t.TempDir(), chasenOutput)
	tg := New(Config{BinaryPath: bin})

	items, err := tg.Parse(t.Context(), "な", 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].BaseForm != "な" {
		t.Errorf("BaseForm = %q, want %q", items[0].BaseForm, "な")
	}
}

func TestParseRejectsBadColumnCount(t *testing.T) {
	t.Parallel()

	chasenOutput := "猫\tネコ\n" // only 2 columns
	bin := fakeChasenScript(t, t.TempDir(), chasenOutput)
	tg := New(Config{BinaryPath: bin})

	if _, err := tg.Parse(t.Context(), "猫", 0); err == nil {
		t.Error("Parse() = nil error, want TextAnalysisError for malformed output")
	}
}

func TestParseInvariantPositionsMatchSubstring(t *testing.T) {
	t.Parallel()

	text := "東京 に 行く"
	chasenOutput := "東京\tトウキョウ\t東京\t名詞-固有名詞-地域-一般\n" +
		"に\tニ\tに\t助詞-格助詞-一般\n" +
		"行く\tイク\t行く\t動詞-自立\t五段・カ行促音便\t基本形\n" +
		"EOS\n"
	bin := fakeChasenScript(t, t.TempDir(), chasenOutput)
	tg := New(Config{BinaryPath: bin})

	items, err := tg.Parse(t.Context(), text, 0)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	runes := []rune(text)
	for _, item := range items {
		pos := item.FoundPositions[0]
		substr := pos.Slice(runes)
		if substr != item.BaseForm && substr != item.FirstSurfaceForm() {
			t.Errorf("position %v substring %q matches neither BaseForm %q nor surface form %q",
				pos, substr, item.BaseForm, item.FirstSurfaceForm())
		}
	}
	_ = lexitem.TextPosition{}
}
