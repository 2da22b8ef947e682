// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage types
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageBadger   = "badger"
	StorageMemory   = "memory"
)

const (
	DefaultPort      = 3318
	DefaultSQLiteDSN = "hidden-pages.db"
)

type Config struct {
	Port         int
	StorageType  string
	DatabaseURL  string
	PuzzlesPath  string
	VisitorSalt  string
	NormalizeNFC bool

	// AllowedOrigins may make credentialed cross-origin requests.
	// Empty means same-origin only.
	AllowedOrigins []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("hidden-pages", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageType, "t", "", "Storage type (sqlite, postgres, badger or memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL, or directory for badger")
	fs.StringVar(&cfg.PuzzlesPath, "puzzles", "", "Puzzle YAML file (default: built-in puzzles)")
	fs.BoolVar(&cfg.NormalizeNFC, "nfc", false, "Normalize passwords to NFC before baking")
	origins := fs.String("origins", "", "Comma-separated origins allowed cross-origin access")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.VisitorSalt, "visitor-salt", "", "Visitor cookie salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Track which flags were explicitly set so env can't override them
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.StorageType == "" {
		cfg.StorageType = os.Getenv("STORAGE_TYPE")
		if cfg.StorageType == "" {
			cfg.StorageType = StorageSQLite
		}
	}
	switch cfg.StorageType {
	case StorageSQLite, StoragePostgres, StorageBadger, StorageMemory:
	default:
		return Config{}, fmt.Errorf("invalid storage type %q", cfg.StorageType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.StorageType {
		case StorageSQLite:
			cfg.DatabaseURL = DefaultSQLiteDSN
		case StoragePostgres, StorageBadger:
			return Config{}, fmt.Errorf("database URL required for %s storage (use -d or DATABASE_URL env)", cfg.StorageType)
		}
	}

	if cfg.PuzzlesPath == "" {
		cfg.PuzzlesPath = os.Getenv("PUZZLES_PATH")
	}

	if *origins == "" {
		*origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(*origins)

	if !set["nfc"] {
		if v := os.Getenv("NORMALIZE_NFC"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid NORMALIZE_NFC env variable")
			}
			cfg.NormalizeNFC = b
		}
	}

	// Secrets - MUST be provided
	if cfg.VisitorSalt == "" {
		cfg.VisitorSalt = os.Getenv("VISITOR_SALT")
	}
	if cfg.VisitorSalt == "" {
		return Config{}, errors.New("VISITOR_SALT required")
	}

	return cfg, nil
}

// splitList splits a comma-separated value, dropping blanks
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
