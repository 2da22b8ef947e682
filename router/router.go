// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/hidden-pages/cliparse"
	"github.com/danielhkuo/hidden-pages/handlers"
	"github.com/danielhkuo/hidden-pages/middleware"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
)

func NewRouter(backend progress.Backend, dict *puzzles.Dictionary, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	puzzleHandler := handlers.NewPuzzleHandler(backend, dict, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Puzzle operations (per visitor)
	mux.HandleFunc("POST /submit", middleware.WithLogging(puzzleHandler.Submit))
	mux.HandleFunc("GET /hint", middleware.WithLogging(puzzleHandler.Hint))
	mux.HandleFunc("GET /progress", middleware.WithLogging(puzzleHandler.Progress))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hidden-pages API v1"))
	})

	return mux
}
