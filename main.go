// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/hidden-pages/cliparse"
	"github.com/danielhkuo/hidden-pages/db"
	"github.com/danielhkuo/hidden-pages/middleware"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
	"github.com/danielhkuo/hidden-pages/router"
)

func main() {
	var err error

	// Load .env if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open progress storage
	backend, err := openBackend(cfg)
	if err != nil {
		slog.Error("progress storage failed", "storage", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Progress storage ready", "storage", cfg.StorageType)

	// Load puzzles
	dict, err := loadPuzzles(cfg)
	if err != nil {
		slog.Error("failed to load puzzles", "path", cfg.PuzzlesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Puzzles loaded", "count", dict.Len())

	// Create router
	mux := router.NewRouter(backend, dict, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openBackend opens the progress backend selected by cfg.StorageType
func openBackend(cfg cliparse.Config) (progress.Backend, error) {
	switch cfg.StorageType {
	case cliparse.StorageMemory:
		return progress.NewMemoryBackend(), nil

	case cliparse.StorageBadger:
		bcfg := progress.DefaultBadgerConfig(cfg.DatabaseURL)
		bcfg.Logger = slog.Default()
		b, err := progress.OpenBadgerBackend(bcfg)
		if err != nil {
			return nil, err
		}
		return b, nil

	default:
		dialect, err := db.ParseDialect(cfg.StorageType)
		if err != nil {
			return nil, err
		}
		conn, err := db.Open(dialect, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return progress.NewSQLBackend(conn, dialect), nil
	}
}

func loadPuzzles(cfg cliparse.Config) (*puzzles.Dictionary, error) {
	if cfg.PuzzlesPath == "" {
		return puzzles.Default(), nil
	}
	return puzzles.Load(cfg.PuzzlesPath)
}
