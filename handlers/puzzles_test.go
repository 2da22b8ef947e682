// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/hidden-pages/auth"
	"github.com/danielhkuo/hidden-pages/models"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
	"github.com/danielhkuo/hidden-pages/session"
	"github.com/danielhkuo/hidden-pages/testutil"
)

func newTestHandler(t *testing.T) (*PuzzleHandler, progress.Backend) {
	t.Helper()
	backend := testutil.SetupTestBackend(t)
	return NewPuzzleHandler(backend, testutil.TestDictionary(t), testutil.GetTestConfig()), backend
}

// submit posts a password, carrying cookies from prev when given
func submit(h *PuzzleHandler, password string, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("POST", "/submit", models.SubmitRequest{Password: password}, nil)
	if prev != nil {
		testutil.WithCookies(req, prev)
	}
	w := httptest.NewRecorder()
	h.Submit(w, req)
	return w
}

func visitorFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == VisitorCookie {
			id, err := auth.ParseVisitorToken(c.Value, testutil.GetTestConfig().VisitorSalt)
			if err != nil {
				t.Fatalf("Invalid visitor cookie: %v", err)
			}
			return id
		}
	}
	t.Fatal("Expected visitor cookie to be set")
	return ""
}

func TestSubmit(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name           string
		password       string
		expectedStatus int
		expectedMsg    string
	}{
		{"correct password", testutil.PasswordOne, http.StatusOK, ""},
		{"empty password", "", http.StatusBadRequest, session.MessageEmptyInput},
		{"wrong password", "wrong", http.StatusForbidden, session.MessageWrongPassword},
		{"over-long password", strings.Repeat("あ", 101), http.StatusForbidden, session.MessageWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submit(h, tt.password, nil)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMsg {
					t.Errorf("Expected message %q, got %q", tt.expectedMsg, resp.Message)
				}
				return
			}

			var resp models.SubmitResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Fingerprint != "つぃうぽぴぃまょ" {
				t.Errorf("Expected fingerprint つぃうぽぴぃまょ, got %q", resp.Fingerprint)
			}
			if resp.Destination != session.Destination(resp.Fingerprint, tt.password) {
				t.Errorf("Unexpected destination %q", resp.Destination)
			}
		})
	}
}

func TestSubmit_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/submit", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmit_RecordsProgress(t *testing.T) {
	h, backend := newTestHandler(t)

	first := submit(h, testutil.PasswordTwo, nil)
	testutil.AssertStatus(t, first, http.StatusOK)
	id := visitorFrom(t, first)

	got, err := progress.ForVisitor(backend, id).ListResolved(context.Background())
	if err != nil {
		t.Fatalf("ListResolved failed: %v", err)
	}
	if len(got) != 1 || got[0] != "ぱゑぢぽぽゅぎま" {
		t.Errorf("Expected [ぱゑぢぽぽゅぎま], got %v", got)
	}

	req := testutil.WithCookies(testutil.MakeRequest("GET", "/progress", nil, nil), first)
	w := httptest.NewRecorder()
	h.Progress(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ProgressResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Indicator != "○●○" {
		t.Errorf("Expected indicator ○●○, got %q", resp.Indicator)
	}
	if resp.AllSolved {
		t.Error("Expected all_solved false")
	}
}

func TestSubmit_WrongPasswordLeavesProgress(t *testing.T) {
	h, backend := newTestHandler(t)

	w := submit(h, "nope", nil)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	got, err := progress.ForVisitor(backend, visitorFrom(t, w)).ListResolved(context.Background())
	if err != nil {
		t.Fatalf("ListResolved failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no progress, got %v", got)
	}
}

func TestProgress_AllSolved(t *testing.T) {
	h, _ := newTestHandler(t)

	prev := submit(h, testutil.PasswordOne, nil)
	testutil.AssertStatus(t, prev, http.StatusOK)
	for _, pw := range []string{testutil.PasswordTwo, testutil.PasswordThree} {
		testutil.AssertStatus(t, submit(h, pw, prev), http.StatusOK)
	}

	req := testutil.WithCookies(testutil.MakeRequest("GET", "/progress", nil, nil), prev)
	w := httptest.NewRecorder()
	h.Progress(w, req)

	var resp models.ProgressResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.AllSolved {
		t.Error("Expected all_solved true")
	}
	if resp.Indicator != session.MessageAllSolved {
		t.Errorf("Expected %q, got %q", session.MessageAllSolved, resp.Indicator)
	}
}

func TestHint(t *testing.T) {
	h, _ := newTestHandler(t)
	h.intn = func(n int) int { return 0 }

	prev := submit(h, testutil.PasswordOne, nil)
	testutil.AssertStatus(t, prev, http.StatusOK)

	req := testutil.WithCookies(testutil.MakeRequest("GET", "/hint", nil, nil), prev)
	w := httptest.NewRecorder()
	h.Hint(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HintResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Position != 1 {
		t.Errorf("Expected position 1, got %d", resp.Position)
	}
	if resp.Text != "英語で合言葉" {
		t.Errorf("Expected hint for the first unsolved page, got %q", resp.Text)
	}
	if resp.Message != "1ページ目のヒント：英語で合言葉" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
}

func TestHint_AllSolvedDrawsFromEverything(t *testing.T) {
	h, _ := newTestHandler(t)
	h.intn = func(n int) int { return n - 1 }

	prev := submit(h, testutil.PasswordOne, nil)
	for _, pw := range []string{testutil.PasswordTwo, testutil.PasswordThree} {
		submit(h, pw, prev)
	}

	req := testutil.WithCookies(testutil.MakeRequest("GET", "/hint", nil, nil), prev)
	w := httptest.NewRecorder()
	h.Hint(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HintResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Position != 3 || resp.Text != "ひらがなで書いた合言葉" {
		t.Errorf("Expected the third hint, got %d %q", resp.Position, resp.Text)
	}
}

func TestHint_NoPuzzles(t *testing.T) {
	dict, err := puzzles.New()
	if err != nil {
		t.Fatalf("puzzles.New failed: %v", err)
	}
	h := NewPuzzleHandler(testutil.SetupTestBackend(t), dict, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.Hint(w, testutil.MakeRequest("GET", "/hint", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCorruptProgress(t *testing.T) {
	h, backend := newTestHandler(t)

	first := submit(h, "nope", nil)
	id := visitorFrom(t, first)
	if err := backend.ForVisitor(id).Put(context.Background(), progress.StorageKey, []byte("{broken")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	for _, tc := range []struct {
		name    string
		handler http.HandlerFunc
		req     *http.Request
	}{
		{"progress", h.Progress, testutil.MakeRequest("GET", "/progress", nil, nil)},
		{"hint", h.Hint, testutil.MakeRequest("GET", "/hint", nil, nil)},
		{"submit", h.Submit, testutil.MakeRequest("POST", "/submit", models.SubmitRequest{Password: testutil.PasswordOne}, nil)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.handler(w, testutil.WithCookies(tc.req, first))
			testutil.AssertStatus(t, w, http.StatusInternalServerError)
		})
	}
}

func TestVisitorCookie(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("issued on first request", func(t *testing.T) {
		w := submit(h, "nope", nil)
		visitorFrom(t, w)
	})

	t.Run("kept when valid", func(t *testing.T) {
		first := submit(h, "nope", nil)
		second := submit(h, "nope", first)
		if len(second.Result().Cookies()) != 0 {
			t.Error("Expected no new cookie for a known visitor")
		}
	})

	t.Run("replaced when tampered", func(t *testing.T) {
		first := submit(h, testutil.PasswordOne, nil)
		id := visitorFrom(t, first)

		req := testutil.MakeRequest("GET", "/progress", nil, nil)
		req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: id + ".forged"})
		w := httptest.NewRecorder()
		h.Progress(w, req)

		if visitorFrom(t, w) == id {
			t.Error("Expected a fresh visitor for a forged cookie")
		}
		var resp models.ProgressResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Indicator != "○○○" {
			t.Errorf("Expected fresh progress, got %q", resp.Indicator)
		}
	})
}

func TestSubmitMetrics(t *testing.T) {
	h, _ := newTestHandler(t)

	wrong := promtestutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeWrong))
	unlocked := promtestutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeUnlocked))
	hints := promtestutil.ToFloat64(hintsTotal)

	prev := submit(h, "nope", nil)
	submit(h, testutil.PasswordOne, prev)
	w := httptest.NewRecorder()
	h.Hint(w, testutil.WithCookies(testutil.MakeRequest("GET", "/hint", nil, nil), prev))

	if got := promtestutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeWrong)) - wrong; got != 1 {
		t.Errorf("Expected 1 wrong submission, got %v", got)
	}
	if got := promtestutil.ToFloat64(submissionsTotal.WithLabelValues(OutcomeUnlocked)) - unlocked; got != 1 {
		t.Errorf("Expected 1 unlocked submission, got %v", got)
	}
	if got := promtestutil.ToFloat64(hintsTotal) - hints; got != 1 {
		t.Errorf("Expected 1 hint, got %v", got)
	}
}

// TestConcurrentSubmissions verifies that simultaneous unlocks by one visitor
// are all recorded
func TestConcurrentSubmissions(t *testing.T) {
	h, backend := newTestHandler(t)

	first := submit(h, "nope", nil)
	id := visitorFrom(t, first)

	passwords := []string{testutil.PasswordOne, testutil.PasswordTwo, testutil.PasswordThree}
	var wg sync.WaitGroup
	for _, pw := range passwords {
		wg.Add(1)
		go func(pw string) {
			defer wg.Done()
			w := submit(h, pw, first)
			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200 for %q, got %d", pw, w.Code)
			}
		}(pw)
	}
	wg.Wait()

	got, err := progress.ForVisitor(backend, id).ListResolved(context.Background())
	if err != nil {
		t.Fatalf("ListResolved failed: %v", err)
	}
	if len(got) != len(passwords) {
		t.Errorf("Expected %d resolved pages, got %v", len(passwords), got)
	}
}
