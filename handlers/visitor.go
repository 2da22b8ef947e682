// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"hash/fnv"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/hidden-pages/auth"
)

// VisitorCookie carries the signed visitor ID
const VisitorCookie = "hp_visitor"

const visitorCookieMaxAge = 365 * 24 * 60 * 60

// visitorID returns the visitor ID from a valid cookie, or issues a new
// visitor and sets the cookie
func visitorID(w http.ResponseWriter, r *http.Request, salt string) string {
	if c, err := r.Cookie(VisitorCookie); err == nil {
		id, err := auth.ParseVisitorToken(c.Value, salt)
		if err == nil {
			return id
		}
		slog.Warn("rejected visitor cookie", "error", err, "remote", r.RemoteAddr)
	}

	id := auth.GenerateVisitorID()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookie,
		Value:    auth.VisitorToken(id, salt),
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("visitor issued", "visitor_id", id)
	return id
}

// visitorLocks serializes progress updates per visitor. Progress is a
// read-modify-write of one stored list.
type visitorLocks struct {
	stripes [64]sync.Mutex
}

func (l *visitorLocks) lock(visitorID string) func() {
	h := fnv.New32a()
	h.Write([]byte(visitorID))
	mu := &l.stripes[h.Sum32()%uint32(len(l.stripes))]
	mu.Lock()
	return mu.Unlock
}
