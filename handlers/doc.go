// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the hidden pages API.

# Handler Types

PuzzleHandler serves password submission, hints and progress. It is
created with a progress backend, the puzzle dictionary and Config:

	puzzleHandler := handlers.NewPuzzleHandler(backend, dict, cfg)

Each request builds a session.Controller bound to the visitor's progress.

# Endpoints

	POST /submit   → Submit (200 unlocked, 400 empty, 403 wrong)
	GET /hint      → Hint (random unsolved page)
	GET /progress  → Progress (●/○ indicator)

Rejections carry the user-facing message in the error response.

# Visitors

Visitors are identified by the hp_visitor cookie, "<uuid>.<hmac>" signed
with VISITOR_SALT. A missing or forged cookie starts a new visitor.
Submissions for the same visitor are serialized.

# Metrics

	hidden_pages_submissions_total{outcome}
	hidden_pages_hints_total
*/
package handlers
