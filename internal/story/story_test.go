package story

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultBook(t *testing.T) {
	b := Default()

	if b.Len() != 6 {
		t.Fatalf("expected 6 chapters, got %d", b.Len())
	}

	wantIDs := []string{"1.5", "1.5-battle", "1.5.5", "1.6", "1.7", "1.8"}
	for i, id := range wantIDs {
		ch, ok := b.Chapter(i)
		if !ok {
			t.Fatalf("chapter %d missing", i)
		}
		if ch.ID != id {
			t.Errorf("chapter %d id = %q, expected %q", i, ch.ID, id)
		}
		if ch.Title == "" || ch.Text == "" {
			t.Errorf("chapter %d has empty title or text", i)
		}
		if strings.Contains(ch.Text, "\n") {
			t.Errorf("chapter %d text should be folded onto one line", i)
		}
	}
}

func TestBookOutOfRange(t *testing.T) {
	b := Default()

	for _, i := range []int{-1, 6, 100} {
		if b.Exists(i) {
			t.Errorf("Exists(%d) = true, expected false", i)
		}
		if _, ok := b.Chapter(i); ok {
			t.Errorf("Chapter(%d) ok = true, expected false", i)
		}
	}

	var nilBook *Book
	if nilBook.Exists(0) || nilBook.Len() != 0 {
		t.Error("nil book should be empty")
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("chapters: []\n"))
	if !errors.Is(err, ErrNoChapters) {
		t.Errorf("expected ErrNoChapters, got %v", err)
	}
}

func TestLoadBook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.yaml")
	data := "chapters:\n  - id: a\n    title: First\n    text: Hello\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook error: %v", err)
	}
	ch, ok := b.Chapter(0)
	if !ok || ch.Title != "First" || ch.Text != "Hello" {
		t.Errorf("unexpected chapter %+v", ch)
	}

	if _, err := LoadBook(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
