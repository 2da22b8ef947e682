// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes
const (
	OutcomeUnlocked   = "unlocked"
	OutcomeEmpty      = "empty"
	OutcomeWrong      = "wrong"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hidden_pages_submissions_total",
		Help: "Password submissions by outcome.",
	}, []string{"outcome"})

	hintsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hidden_pages_hints_total",
		Help: "Hints served.",
	})
)
