// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey is the well-known key holding a visitor's resolved fingerprints
const StorageKey = "passed_passwords"

var ErrCorruptState = errors.New("progress state is corrupt")

// Store tracks the fingerprints one visitor has resolved
type Store interface {
	// ListResolved returns resolved fingerprints in the order they were solved.
	// A visitor with no progress gets an empty slice.
	ListResolved(ctx context.Context) ([]string, error)

	// MarkResolved appends fp. Duplicates are kept.
	MarkResolved(ctx context.Context, fp string) error
}

// KV is a key-value store scoped to one visitor
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Backend hands out visitor-scoped KV stores
type Backend interface {
	ForVisitor(visitorID string) KV
	Close() error
}

// KVStore keeps the resolved list as a JSON array under StorageKey
type KVStore struct {
	kv KV
}

func New(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

// ForVisitor is shorthand for New(backend.ForVisitor(visitorID))
func ForVisitor(backend Backend, visitorID string) *KVStore {
	return New(backend.ForVisitor(visitorID))
}

func (s *KVStore) ListResolved(ctx context.Context) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	var resolved []string
	if err := json.Unmarshal(raw, &resolved); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	if resolved == nil {
		resolved = []string{}
	}

	return resolved, nil
}

// MarkResolved is read-modify-write and not atomic across concurrent
// callers for the same visitor.
func (s *KVStore) MarkResolved(ctx context.Context, fp string) error {
	resolved, err := s.ListResolved(ctx)
	if err != nil {
		return err
	}

	resolved = append(resolved, fp)

	payload, err := json.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, payload); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}

	return nil
}
