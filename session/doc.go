// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session runs password submissions and hint selection for one visitor.

# Controller

A Controller ties together the puzzle dictionary, the encoder, and the
visitor's progress store:

	c := session.New(dict, enc, progress.ForVisitor(backend, visitorID))

# Submitting

	unlock, err := c.Submit(ctx, password)
	switch {
	case errors.Is(err, session.ErrEmptyInput):
	case errors.Is(err, session.ErrWrongPassword):
	case err != nil:
		// storage failure, including progress.ErrCorruptState
	}
	// unlock.Destination: frame.html?dist=<fingerprint>&password=<plaintext>

Oversized input bakes to fingerprint.InvalidMarker, which matches nothing and
comes back as ErrWrongPassword. A match appends the fingerprint to progress.
RejectionMessage gives the user-facing text for each rejection.

# Hints

	hint, err := c.PickHint(ctx)
	hint.String() // "2ページ目のヒント：..."

Hints are drawn uniformly from unsolved puzzles, in dictionary order. Once all
are solved, every puzzle is eligible again. Position is 1-based within the set
the hint was drawn from.

# Progress

	summary, err := c.ProgressSummary(ctx)
	summary.Solved      // one bool per puzzle
	summary.Indicator() // "●○○..." or the congratulations message
*/
package session
