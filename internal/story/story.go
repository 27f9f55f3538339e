// Package story holds the narrative chapters shown between combat sections.
// The simulation only asks whether a chapter exists and fetches it by index;
// the text itself is data, embedded by default or loaded from a YAML file.
package story

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed book.yaml
var defaultBookYAML []byte

// ErrNoChapters is returned when a book file contains no chapters.
var ErrNoChapters = errors.New("story: book has no chapters")

// Chapter is one narrative interlude.
type Chapter struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Provider is the narrative content source consumed by the simulation.
type Provider interface {
	// Exists reports whether chapter i can be shown.
	Exists(i int) bool
	// Chapter returns chapter i, or false if it does not exist.
	Chapter(i int) (Chapter, bool)
}

// Book is an ordered, immutable list of chapters.
type Book struct {
	Chapters []Chapter `yaml:"chapters"`
}

// Exists reports whether chapter i is in the book.
func (b *Book) Exists(i int) bool {
	return b != nil && i >= 0 && i < len(b.Chapters)
}

// Chapter returns chapter i.
func (b *Book) Chapter(i int) (Chapter, bool) {
	if !b.Exists(i) {
		return Chapter{}, false
	}
	return b.Chapters[i], true
}

// Len returns the number of chapters.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Chapters)
}

// Parse decodes a book from YAML.
func Parse(data []byte) (*Book, error) {
	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("story: parse: %w", err)
	}
	if len(b.Chapters) == 0 {
		return nil, ErrNoChapters
	}
	return &b, nil
}

// LoadBook reads a book from a YAML file.
func LoadBook(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("story: read %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Default returns the embedded book.
func Default() *Book {
	b, err := Parse(defaultBookYAML)
	if err != nil {
		// The embedded file is part of the binary; failing to parse it is a build defect.
		panic(err)
	}
	return b
}
