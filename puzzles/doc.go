// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package puzzles holds the dictionary of valid fingerprints and their hints.

# Dictionary

A Dictionary is immutable once built and keeps entries in the order given:

	d, err := puzzles.New(
		puzzles.Entry{Fingerprint: "つぃうぽぴぃまょ", Hint: "カタカナで三文字。"},
	)
	entry, ok := d.Lookup(fp)

Order matters: hint labels ("3ページ目のヒント") and progress indicators are
numbered by position.

New rejects empty and duplicate fingerprints, and fingerprint.InvalidMarker,
which oversized input bakes to.

# File Format

Puzzle files are YAML:

	puzzles:
	  - fingerprint: えきむっごきへで
	    hint: 最強な私の名前。

Load them with:

	d, err := puzzles.Load("puzzles.yaml")

Default returns the built-in set compiled into the binary. Plaintext passwords
never appear in puzzle files; use `hpctl bake` to produce fingerprints.
*/
package puzzles
