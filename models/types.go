// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type SubmitRequest struct {
	Password string `json:"password"`
}

// Response types

type SubmitResponse struct {
	Fingerprint string `json:"fingerprint"`
	Destination string `json:"destination"`
}

type HintResponse struct {
	Position int    `json:"position"` // 1-indexed within the unsolved set
	Text     string `json:"text"`
	Message  string `json:"message"` // "<N>ページ目のヒント：<text>"
}

type ProgressResponse struct {
	Solved    []bool `json:"solved"`
	AllSolved bool   `json:"all_solved"`
	Indicator string `json:"indicator"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
