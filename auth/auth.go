// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrInvalidSignature = errors.New("invalid visitor signature")
)

// GenerateVisitorID creates a random visitor ID (UUID v4)
func GenerateVisitorID() string {
	return uuid.NewString()
}

// SignVisitorID creates an HMAC signature for a visitor ID
// This is deterministic and verifiable
func SignVisitorID(visitorID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(visitorID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VisitorToken returns the cookie value for a visitor: "<id>.<signature>"
func VisitorToken(visitorID, salt string) string {
	return visitorID + "." + SignVisitorID(visitorID, salt)
}

// ParseVisitorToken validates a token created by VisitorToken and returns
// the visitor ID
func ParseVisitorToken(token, salt string) (string, error) {
	visitorID, sig, ok := strings.Cut(token, ".")
	if !ok || visitorID == "" || sig == "" {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(visitorID); err != nil {
		return "", ErrInvalidToken
	}

	expected := SignVisitorID(visitorID, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return visitorID, nil
}
