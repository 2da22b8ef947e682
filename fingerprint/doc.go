// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fingerprint bakes visitor passwords into fixed-length fingerprints.

# Alphabet

Fingerprints are drawn from an ordered alphabet built from a code point range:

	alphabet, err := fingerprint.BuildAlphabet("あ", "ん")

The default alphabet (あ..ん, 82 symbols) is built once and shared:

	alphabet := fingerprint.DefaultAlphabet()

# Baking

	enc := fingerprint.NewEncoder(alphabet)
	fp := enc.Bake("テスト") // "つぃうぽぴぃまょ"

Every fingerprint is HashLength (8) symbols. Input longer than 100 code points
returns InvalidMarker instead. Inputs shorter than 8 are padded first; inputs at
or above 8 keep their full length.

The hash loop walks the input forwards and backwards at once, mixing both ends
into a 31-bit accumulator. Each step writes one symbol into the slot chosen by
the accumulator; an occupied slot redirects the write to the first empty slot,
or overwrites in place when none is left.

Baking is deterministic and fingerprints are compared as plain strings. This is
obscurity, not security: do not gate anything valuable behind it.
*/
package fingerprint
