// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/hidden-pages/cliparse"
	"github.com/danielhkuo/hidden-pages/db"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// Passwords for TestDictionary, in dictionary order
const (
	PasswordOne   = "テスト"
	PasswordTwo   = "password"
	PasswordThree = "ひみつのぱすわーど"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestBackend returns a SQL progress backend over a fresh test database
func SetupTestBackend(t *testing.T) progress.Backend {
	t.Helper()

	conn := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return progress.NewSQLBackend(conn, db.DialectSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		StorageType: cliparse.StorageSQLite,
		DatabaseURL: TestDBURL,
		VisitorSalt: "test-visitor-salt",
	}
}

// TestDictionary returns three puzzles unlocked by PasswordOne, PasswordTwo
// and PasswordThree
func TestDictionary(t *testing.T) *puzzles.Dictionary {
	t.Helper()

	dict, err := puzzles.New(
		puzzles.Entry{Fingerprint: "つぃうぽぴぃまょ", Hint: "カタカナ三文字"},
		puzzles.Entry{Fingerprint: "ぱゑぢぽぽゅぎま", Hint: "英語で合言葉"},
		puzzles.Entry{Fingerprint: "んてゎねぢぽうい", Hint: "ひらがなで書いた合言葉"},
	)
	if err != nil {
		t.Fatalf("Failed to build test dictionary: %v", err)
	}
	return dict
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithCookies copies the cookies set on a previous response onto req
func WithCookies(req *http.Request, w *httptest.ResponseRecorder) *http.Request {
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
