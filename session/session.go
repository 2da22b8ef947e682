// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/hidden-pages/fingerprint"
	"github.com/danielhkuo/hidden-pages/progress"
	"github.com/danielhkuo/hidden-pages/puzzles"
)

var (
	ErrEmptyInput    = errors.New("password is empty")
	ErrWrongPassword = errors.New("password does not match any page")
	ErrNoPuzzles     = errors.New("dictionary has no puzzles")
)

// User-facing messages
const (
	MessageEmptyInput    = "パスワードを入力してください！"
	MessageWrongPassword = "パスワードが間違っています！"
	MessageAllSolved     = "全隠しページを制覇しました！おめでとうございます！"
)

// DestinationPage is the page that renders unlocked content
const DestinationPage = "frame.html"

// Unlock is the result of a successful submission
type Unlock struct {
	Fingerprint string
	// Plaintext is passed through for routing only and is never stored
	Plaintext   string
	Destination string
}

// Hint is an unsolved puzzle's hint and its 1-based position in the set it
// was drawn from
type Hint struct {
	Position int
	Text     string
}

func (h Hint) String() string {
	return fmt.Sprintf("%dページ目のヒント：%s", h.Position, h.Text)
}

// Summary is the solved state of each puzzle in dictionary order
type Summary struct {
	Solved []bool
}

func (s Summary) AllSolved() bool {
	for _, solved := range s.Solved {
		if !solved {
			return false
		}
	}
	return true
}

// Indicator renders ● for solved and ○ for unsolved puzzles, or the
// congratulations message once everything is solved
func (s Summary) Indicator() string {
	if s.AllSolved() {
		return MessageAllSolved
	}

	var b strings.Builder
	for _, solved := range s.Solved {
		if solved {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

// Controller runs submissions and hint selection for one visitor.
// It is not safe for concurrent use by the same visitor (see progress.Store).
type Controller struct {
	dict      *puzzles.Dictionary
	encoder   *fingerprint.Encoder
	store     progress.Store
	intn      func(n int) int
	normalize bool
	logger    *slog.Logger
}

type Option func(*Controller)

// WithRand replaces the random source used by PickHint.
// intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(c *Controller) { c.intn = intn }
}

// WithNormalization applies Unicode NFC to input before baking. Off by
// default; enabling it changes fingerprints of decomposed input.
func WithNormalization(enabled bool) Option {
	return func(c *Controller) { c.normalize = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

func New(dict *puzzles.Dictionary, encoder *fingerprint.Encoder, store progress.Store, opts ...Option) *Controller {
	c := &Controller{
		dict:    dict,
		encoder: encoder,
		store:   store,
		intn:    rand.IntN,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit checks raw against the dictionary and records a match
func (c *Controller) Submit(ctx context.Context, raw string) (Unlock, error) {
	if raw == "" {
		return Unlock{}, ErrEmptyInput
	}

	input := raw
	if c.normalize {
		input = norm.NFC.String(raw)
	}

	fp := c.encoder.Bake(input)
	if fp == fingerprint.InvalidMarker {
		return Unlock{}, ErrWrongPassword
	}
	if _, ok := c.dict.Lookup(fp); !ok {
		return Unlock{}, ErrWrongPassword
	}

	if err := c.store.MarkResolved(ctx, fp); err != nil {
		return Unlock{}, fmt.Errorf("failed to record progress: %w", err)
	}

	c.logger.Info("page unlocked", "fingerprint", fp, "position", c.dict.Index(fp)+1)

	return Unlock{
		Fingerprint: fp,
		Plaintext:   raw,
		Destination: Destination(fp, raw),
	}, nil
}

// Destination builds the link to the unlocked page
func Destination(fp, plaintext string) string {
	q := url.Values{}
	q.Set("dist", fp)
	q.Set("password", plaintext)
	return DestinationPage + "?" + q.Encode()
}

// PickHint returns a random hint for an unsolved puzzle. Once everything is
// solved it draws from the whole dictionary.
func (c *Controller) PickHint(ctx context.Context) (Hint, error) {
	resolved, err := c.resolvedSet(ctx)
	if err != nil {
		return Hint{}, err
	}

	all := c.dict.Entries()
	candidates := make([]puzzles.Entry, 0, len(all))
	for _, e := range all {
		if _, done := resolved[e.Fingerprint]; !done {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}
	if len(candidates) == 0 {
		return Hint{}, ErrNoPuzzles
	}

	i := c.intn(len(candidates))
	return Hint{Position: i + 1, Text: candidates[i].Hint}, nil
}

// ProgressSummary reports each puzzle's solved state in dictionary order
func (c *Controller) ProgressSummary(ctx context.Context) (Summary, error) {
	resolved, err := c.resolvedSet(ctx)
	if err != nil {
		return Summary{}, err
	}

	entries := c.dict.Entries()
	s := Summary{Solved: make([]bool, len(entries))}
	for i, e := range entries {
		_, s.Solved[i] = resolved[e.Fingerprint]
	}
	return s, nil
}

func (c *Controller) resolvedSet(ctx context.Context) (map[string]struct{}, error) {
	list, err := c.store.ListResolved(ctx)
	if err != nil {
		if errors.Is(err, progress.ErrCorruptState) {
			c.logger.Warn("visitor progress is corrupt", "error", err)
		}
		return nil, err
	}

	set := make(map[string]struct{}, len(list))
	for _, fp := range list {
		set[fp] = struct{}{}
	}
	return set, nil
}

// RejectionMessage maps a Submit error to its user-facing message.
// Unknown errors return an empty string.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return MessageEmptyInput
	case errors.Is(err, ErrWrongPassword):
		return MessageWrongPassword
	}
	return ""
}
