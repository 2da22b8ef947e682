// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package puzzles

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/hidden-pages/fingerprint"
)

var (
	ErrEmptyFingerprint     = errors.New("puzzle fingerprint is empty")
	ErrDuplicateFingerprint = errors.New("duplicate puzzle fingerprint")
	ErrNoPuzzles            = errors.New("puzzle file defines no puzzles")
	ErrReservedFingerprint  = errors.New("puzzle fingerprint is the oversized-input marker")
)

//go:embed default.yaml
var defaultYAML []byte

// Entry is one hidden page: the fingerprint that unlocks it and its hint
type Entry struct {
	Fingerprint string `yaml:"fingerprint" json:"fingerprint"`
	Hint        string `yaml:"hint" json:"hint"`
}

// Dictionary is an immutable, ordered set of puzzle entries.
// Order is the order entries were given in and drives hint numbering.
type Dictionary struct {
	entries []Entry
	index   map[string]int
}

type document struct {
	Puzzles []Entry `yaml:"puzzles"`
}

// New builds a dictionary, rejecting empty, reserved and duplicate fingerprints
func New(entries ...Entry) (*Dictionary, error) {
	d := &Dictionary{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if e.Fingerprint == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyFingerprint)
		}
		if e.Fingerprint == fingerprint.InvalidMarker {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrReservedFingerprint)
		}
		if _, exists := d.index[e.Fingerprint]; exists {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, e.Fingerprint, ErrDuplicateFingerprint)
		}
		d.index[e.Fingerprint] = len(d.entries)
		d.entries = append(d.entries, e)
	}

	return d, nil
}

// Parse reads a YAML puzzle document
func Parse(r io.Reader) (*Dictionary, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse puzzles: %w", err)
	}
	if len(doc.Puzzles) == 0 {
		return nil, ErrNoPuzzles
	}
	return New(doc.Puzzles...)
}

// Load reads a YAML puzzle document from path
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzles: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the built-in puzzle set
func Default() *Dictionary {
	d, err := Parse(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded puzzles are invalid: %v", err))
	}
	return d
}

// Lookup returns the entry for fp
func (d *Dictionary) Lookup(fp string) (Entry, bool) {
	i, ok := d.index[fp]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Index returns the 0-based position of fp, or -1
func (d *Dictionary) Index(fp string) int {
	if i, ok := d.index[fp]; ok {
		return i
	}
	return -1
}

// Entries returns a copy of all entries in dictionary order
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}
