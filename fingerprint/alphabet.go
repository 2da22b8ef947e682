// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

var ErrInvalidCodePoint = errors.New("alphabet bound must be a single code point")

// Default alphabet bounds (hiragana あ..ん)
const (
	DefaultStart = "あ"
	DefaultEnd   = "ん"
)

// Alphabet is an ordered set of unique symbols. The position of a symbol is
// its numeric value in the encoder.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// BuildAlphabet returns every code point from start to end, inclusive.
// Reversed bounds are swapped first.
func BuildAlphabet(start, end string) (*Alphabet, error) {
	lo, err := singleCodePoint(start)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", start, err)
	}
	hi, err := singleCodePoint(end)
	if err != nil {
		return nil, fmt.Errorf("end %q: %w", end, err)
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	a := &Alphabet{
		symbols: make([]rune, 0, hi-lo+1),
		index:   make(map[rune]int, hi-lo+1),
	}
	for r := lo; r <= hi; r++ {
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}

	return a, nil
}

func singleCodePoint(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, ErrInvalidCodePoint
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultAlphabet *Alphabet
)

// DefaultAlphabet returns the shared hiragana alphabet. It is built once.
func DefaultAlphabet() *Alphabet {
	defaultOnce.Do(func() {
		a, err := BuildAlphabet(DefaultStart, DefaultEnd)
		if err != nil {
			panic(err)
		}
		defaultAlphabet = a
	})
	return defaultAlphabet
}

// Size returns the number of symbols
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbol returns the symbol at position i
func (a *Alphabet) Symbol(i int) (rune, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i], true
}

// Index returns the position of r, or -1 if r is not a member
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}
