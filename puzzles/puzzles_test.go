// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package puzzles

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/hidden-pages/fingerprint"
)

func TestNew_PreservesOrder(t *testing.T) {
	d, err := New(
		Entry{Fingerprint: "c", Hint: "third"},
		Entry{Fingerprint: "a", Hint: "first"},
		Entry{Fingerprint: "b", Hint: "second"},
	)
	require.NoError(t, err)

	var got []string
	for _, e := range d.Entries() {
		got = append(got, e.Fingerprint)
	}
	assert.Equal(t, []string{"c", "a", "b"}, got)
	assert.Equal(t, 1, d.Index("a"))
	assert.Equal(t, -1, d.Index("z"))
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"empty fingerprint", []Entry{{Fingerprint: "", Hint: "x"}}, ErrEmptyFingerprint},
		{"duplicate", []Entry{{Fingerprint: "a"}, {Fingerprint: "a"}}, ErrDuplicateFingerprint},
		{"oversized-input marker", []Entry{{Fingerprint: "つぃうぽぴぃまょ"}, {Fingerprint: fingerprint.InvalidMarker, Hint: "h"}}, ErrReservedFingerprint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_RejectsMarkerFingerprint(t *testing.T) {
	_, err := Parse(strings.NewReader("puzzles:\n  - fingerprint: \"?\"\n    hint: h\n"))
	assert.ErrorIs(t, err, ErrReservedFingerprint)
}

func TestLookup(t *testing.T) {
	d, err := New(Entry{Fingerprint: "つぃうぽぴぃまょ", Hint: "カタカナ"})
	require.NoError(t, err)

	e, ok := d.Lookup("つぃうぽぴぃまょ")
	require.True(t, ok)
	assert.Equal(t, "カタカナ", e.Hint)

	_, ok = d.Lookup(fingerprint.InvalidMarker)
	assert.False(t, ok)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	d, err := New(Entry{Fingerprint: "a", Hint: "original"})
	require.NoError(t, err)

	entries := d.Entries()
	entries[0].Hint = "mutated"

	e, _ := d.Lookup("a")
	assert.Equal(t, "original", e.Hint)
}

func TestLoad(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "two.yaml"))
	require.NoError(t, err)

	require.Equal(t, 2, d.Len())
	entries := d.Entries()
	assert.Equal(t, "つぃうぽぴぃまょ", entries[0].Fingerprint)
	assert.Equal(t, "よくあるパスワード。", entries[1].Hint)
}

func TestLoad_Duplicate(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate.yaml"))
	assert.ErrorIs(t, err, ErrDuplicateFingerprint)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("puzzles: []\n"))
	assert.ErrorIs(t, err, ErrNoPuzzles)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("puzzles: [\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	d := Default()
	require.Equal(t, 6, d.Len())

	enc := fingerprint.DefaultEncoder()
	for _, e := range d.Entries() {
		assert.True(t, enc.Valid(e.Fingerprint), "fingerprint %q", e.Fingerprint)
		assert.NotEmpty(t, e.Hint)
	}

	first := d.Entries()[0]
	assert.Equal(t, "えきむっごきへで", first.Fingerprint)
}
