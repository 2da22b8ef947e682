// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fingerprint

import "unicode/utf8"

const (
	// HashLength is the number of symbols in every fingerprint
	HashLength = 8

	// MaxInputLength bounds the input, in code points
	MaxInputLength = 100

	// InvalidMarker is returned for oversized input. It is never a valid fingerprint.
	InvalidMarker = "?"

	// EmptySlot fills fingerprint slots that were never written
	EmptySlot = '-'
)

// absentSymbol is appended during padding when the computed index does not
// name an alphabet symbol. Existing fingerprints of short passwords depend on it.
const absentSymbol = "undefined"

// Encoder bakes passwords into fingerprints over a fixed alphabet.
// It holds no mutable state and is safe for concurrent use.
type Encoder struct {
	alphabet *Alphabet
}

func NewEncoder(alphabet *Alphabet) *Encoder {
	return &Encoder{alphabet: alphabet}
}

// DefaultEncoder returns an encoder over DefaultAlphabet
func DefaultEncoder() *Encoder {
	return NewEncoder(DefaultAlphabet())
}

// Bake bakes raw with the default encoder
func Bake(raw string) string {
	return DefaultEncoder().Bake(raw)
}

func (e *Encoder) Alphabet() *Alphabet {
	return e.alphabet
}

// Bake turns raw into a fingerprint of HashLength symbols.
// Input longer than MaxInputLength yields InvalidMarker.
func (e *Encoder) Bake(raw string) string {
	if utf8.RuneCountInString(raw) > MaxInputLength {
		return InvalidMarker
	}

	input := []rune(raw)
	if len(input) < HashLength {
		input = e.pad(input)
	}

	size := uint32(e.alphabet.Size())
	out := make([]rune, HashLength)
	for i := range out {
		out[i] = EmptySlot
	}

	// 32-bit wrapping arithmetic; an index of -1 wraps to 0xffffffff
	var hash uint32
	for i, j := 0, len(input)-1; i < len(input); i, j = i+1, j-1 {
		h1 := hash*3 + uint32(input[i])
		h2 := hash*15 + uint32(input[j])
		h3 := hash*63 + uint32(int32(e.alphabet.Index(input[i])))

		hash = (h1 ^ h2 ^ h3) & 0x7fffffff

		symbol := e.alphabet.symbols[hash%size]

		putPos := int(hash % HashLength)
		if out[putPos] != EmptySlot {
			putPos = firstEmpty(out)
			if putPos == -1 {
				putPos = int(hash % HashLength)
			}
		}
		out[putPos] = symbol
	}

	return string(out)
}

// pad extends input to at least HashLength code points. Every iteration
// samples the first code point of the original input.
func (e *Encoder) pad(input []rune) []rune {
	insufficiency := HashLength - len(input)

	padded := make([]rune, len(input), len(input)+insufficiency*len(absentSymbol))
	copy(padded, input)

	for range insufficiency {
		if r, ok := e.paddingSymbol(input, insufficiency); ok {
			padded = append(padded, r)
		} else {
			padded = append(padded, []rune(absentSymbol)...)
		}
	}

	return padded
}

func (e *Encoder) paddingSymbol(input []rune, insufficiency int) (rune, bool) {
	if len(input) == 0 {
		return 0, false
	}

	cp := int(input[0])
	if cp%2 == 0 {
		cp += insufficiency
	} else {
		cp -= insufficiency
	}

	// Only exact multiples of the alphabet size land on a symbol
	size := e.alphabet.Size()
	if cp%size != 0 {
		return 0, false
	}
	return e.alphabet.Symbol(cp / size)
}

func firstEmpty(out []rune) int {
	for i, r := range out {
		if r == EmptySlot {
			return i
		}
	}
	return -1
}

// Valid reports whether fp has the shape of a fingerprint over this alphabet
func (e *Encoder) Valid(fp string) bool {
	if utf8.RuneCountInString(fp) != HashLength {
		return false
	}
	for _, r := range fp {
		if !e.alphabet.Contains(r) {
			return false
		}
	}
	return true
}
