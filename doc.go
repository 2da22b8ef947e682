// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hidden pages API server.

Hidden pages is a password puzzle site. Each password is baked into an
eight-symbol hiragana fingerprint; a fingerprint that matches a puzzle
unlocks its page, and the visitor's solved pages are remembered.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	VISITOR_SALT=... go run main.go

Or with flags:

	go run main.go -p 3318 -t badger -d ./data -visitor-salt ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - VISITOR_SALT (-visitor-salt): Secret for visitor cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORAGE_TYPE (-t): sqlite, postgres, badger or memory (default: sqlite)
  - DATABASE_URL (-d): DSN or badger directory (default: hidden-pages.db)
  - PUZZLES_PATH (-puzzles): YAML puzzle file (default: built-in set)
  - NORMALIZE_NFC (-nfc): NFC-normalize passwords

# Architecture

  - fingerprint: Password baking
  - puzzles: Fingerprint → hint dictionary
  - progress: Per-visitor solved list (SQL, badger, memory)
  - session: Submit, hint and progress logic
  - handlers: HTTP request handlers and metrics
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Visitor ID signing
  - db: Connections and schema
  - cliparse: Configuration parsing
  - cmd/hpctl: Authoring CLI

See package documentation for each component.
*/
package main
