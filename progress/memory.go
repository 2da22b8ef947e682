// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"context"
	"sync"
)

// MemoryBackend keeps everything in process memory. Data is lost on exit.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string][]byte)}
}

func (b *MemoryBackend) ForVisitor(visitorID string) KV {
	return &memoryKV{backend: b, visitorID: visitorID}
}

func (b *MemoryBackend) Close() error {
	return nil
}

type memoryKV struct {
	backend   *MemoryBackend
	visitorID string
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()

	v, ok := m.backend.data[m.visitorID][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryKV) Put(ctx context.Context, key string, value []byte) error {
	m.backend.mu.Lock()
	defer m.backend.mu.Unlock()

	bucket, ok := m.backend.data[m.visitorID]
	if !ok {
		bucket = make(map[string][]byte)
		m.backend.data[m.visitorID] = bucket
	}
	bucket[key] = append([]byte(nil), value...)
	return nil
}
