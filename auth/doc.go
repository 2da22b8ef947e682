// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides visitor identity and token signing utilities.

# Visitor IDs

Each browser gets a random UUID v4 the first time it talks to the server:

	visitorID := auth.GenerateVisitorID()

Progress is stored per visitor ID, so the ID plays the role of a browser
profile.

# Visitor Tokens

The ID travels in a cookie as "<id>.<signature>", where the signature is
HMAC-SHA256 over the ID keyed with the visitor salt:

	token := auth.VisitorToken(visitorID, salt)
	visitorID, err := auth.ParseVisitorToken(token, salt)

The signature is URL-safe base64 without padding. Since it's deterministic,
the server can validate tokens without storing them. A token that fails
validation returns ErrInvalidToken or ErrInvalidSignature; callers treat the
visitor as new.
*/
package auth
