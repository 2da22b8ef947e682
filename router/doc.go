// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the hidden pages API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(backend, dict, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics - Prometheus exposition

Puzzles (per visitor, identified by the hp_visitor cookie):

	POST /submit   - Submit a password
	GET  /hint     - Random hint for an unsolved page
	GET  /progress - Solved state of every page

# Handler Initialization

	puzzleHandler := handlers.NewPuzzleHandler(backend, dict, cfg)

The handler receives the progress backend, the puzzle dictionary and the
configuration.
*/
package router
