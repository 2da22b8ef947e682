// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hidden-pages/cliparse"
	"github.com/danielhkuo/hidden-pages/fingerprint"
	"github.com/danielhkuo/hidden-pages/middleware"
	"github.com/danielhkuo/hidden-pages/models"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
	"github.com/danielhkuo/hidden-pages/session"
)

type PuzzleHandler struct {
	backend progress.Backend
	dict    *puzzles.Dictionary
	encoder *fingerprint.Encoder
	cfg     cliparse.Config
	locks   visitorLocks

	// intn overrides hint selection in tests
	intn func(n int) int
}

func NewPuzzleHandler(backend progress.Backend, dict *puzzles.Dictionary, cfg cliparse.Config) *PuzzleHandler {
	return &PuzzleHandler{
		backend: backend,
		dict:    dict,
		encoder: fingerprint.DefaultEncoder(),
		cfg:     cfg,
	}
}

// controller builds a session controller bound to the requesting visitor
func (h *PuzzleHandler) controller(visitorID string) *session.Controller {
	opts := []session.Option{
		session.WithNormalization(h.cfg.NormalizeNFC),
		session.WithLogger(slog.Default().With("visitor_id", visitorID)),
	}
	if h.intn != nil {
		opts = append(opts, session.WithRand(h.intn))
	}
	return session.New(h.dict, h.encoder, progress.ForVisitor(h.backend, visitorID), opts...)
}

// Submit handles POST /submit
// Bakes the password and records the page as solved when it matches
func (h *PuzzleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		submissionsTotal.WithLabelValues(OutcomeBadRequest).Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id := visitorID(w, r, h.cfg.VisitorSalt)
	unlock := h.locks.lock(id)
	defer unlock()

	result, err := h.controller(id).Submit(r.Context(), req.Password)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrEmptyInput):
		submissionsTotal.WithLabelValues(OutcomeEmpty).Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, session.RejectionMessage(err))
		return
	case errors.Is(err, session.ErrWrongPassword):
		submissionsTotal.WithLabelValues(OutcomeWrong).Inc()
		middleware.ErrorResponse(w, http.StatusForbidden, session.RejectionMessage(err))
		return
	default:
		submissionsTotal.WithLabelValues(OutcomeError).Inc()
		slog.Error("failed to submit password", "visitor_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record progress")
		return
	}

	submissionsTotal.WithLabelValues(OutcomeUnlocked).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Fingerprint: result.Fingerprint,
		Destination: result.Destination,
	})
}

// Hint handles GET /hint
// Returns a random hint for a page the visitor has not solved yet
func (h *PuzzleHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := visitorID(w, r, h.cfg.VisitorSalt)

	hint, err := h.controller(id).PickHint(r.Context())
	if errors.Is(err, session.ErrNoPuzzles) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No puzzles")
		return
	}
	if err != nil {
		slog.Error("failed to pick hint", "visitor_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	hintsTotal.Inc()
	middleware.JSONResponse(w, http.StatusOK, models.HintResponse{
		Position: hint.Position,
		Text:     hint.Text,
		Message:  hint.String(),
	})
}

// Progress handles GET /progress
func (h *PuzzleHandler) Progress(w http.ResponseWriter, r *http.Request) {
	id := visitorID(w, r, h.cfg.VisitorSalt)

	summary, err := h.controller(id).ProgressSummary(r.Context())
	if err != nil {
		slog.Error("failed to load progress", "visitor_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProgressResponse{
		Solved:    summary.Solved,
		AllSolved: summary.AllSolved(),
		Indicator: summary.Indicator(),
	})
}
