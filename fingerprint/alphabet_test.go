// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAlphabet(t *testing.T) {
	a, err := BuildAlphabet("あ", "ん")
	require.NoError(t, err)

	assert.Equal(t, 82, a.Size())

	first, ok := a.Symbol(0)
	require.True(t, ok)
	assert.Equal(t, 'あ', first)

	last, ok := a.Symbol(a.Size() - 1)
	require.True(t, ok)
	assert.Equal(t, 'ん', last)

	assert.Equal(t, 1, a.Index('ぃ'))
	assert.Equal(t, -1, a.Index('ア'))
	assert.False(t, a.Contains('-'))
}

func TestBuildAlphabet_ReversedBounds(t *testing.T) {
	forward, err := BuildAlphabet("あ", "ん")
	require.NoError(t, err)

	reversed, err := BuildAlphabet("ん", "あ")
	require.NoError(t, err)

	assert.Equal(t, forward.String(), reversed.String())
}

func TestBuildAlphabet_SingleSymbol(t *testing.T) {
	a, err := BuildAlphabet("a", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", a.String())
}

func TestBuildAlphabet_InvalidBounds(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"empty start", "", "ん"},
		{"empty end", "あ", ""},
		{"two code points", "ab", "z"},
		{"invalid utf-8", "\xff", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAlphabet(tt.start, tt.end)
			if !errors.Is(err, ErrInvalidCodePoint) {
				t.Errorf("BuildAlphabet() error = %v, want %v", err, ErrInvalidCodePoint)
			}
		})
	}
}

func TestAlphabet_SymbolOutOfRange(t *testing.T) {
	a := DefaultAlphabet()

	_, ok := a.Symbol(-1)
	assert.False(t, ok)

	_, ok = a.Symbol(a.Size())
	assert.False(t, ok)
}

func TestDefaultAlphabet_Shared(t *testing.T) {
	assert.Same(t, DefaultAlphabet(), DefaultAlphabet())
}
