// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StorageType: sqlite (default), postgres, badger or memory
  - DatabaseURL: DSN for sqlite/postgres, directory for badger
  - PuzzlesPath: YAML puzzle file (default: built-in puzzles)
  - VisitorSalt: Secret for visitor cookie HMAC (required)
  - NormalizeNFC: NFC-normalize passwords before baking (default: off)
  - AllowedOrigins: origins allowed credentialed CORS (default: none)

# CLI Flags

	-p             Server port
	-t             Storage type
	-d             Database URL / badger directory
	-puzzles       Puzzle file
	-visitor-salt  Visitor cookie salt
	-nfc           NFC normalization
	-origins       Comma-separated CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	STORAGE_TYPE    → -t
	DATABASE_URL    → -d
	PUZZLES_PATH    → -puzzles
	VISITOR_SALT    → -visitor-salt
	NORMALIZE_NFC   → -nfc
	ALLOWED_ORIGINS → -origins

CLI flags take precedence over environment variables. main.go loads a .env
file (if present) before parsing.

# Validation

ParseFlags returns an error if:

  - VISITOR_SALT is missing
  - the storage type is unknown
  - postgres or badger storage has no DATABASE_URL
*/
package cliparse
