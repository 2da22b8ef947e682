// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package progress

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/danielhkuo/hidden-pages/db"
)

// SQLBackend stores visitor data in the visitor_storage table.
// The schema must already exist (see db.CreateSchema).
type SQLBackend struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewSQLBackend(conn *sql.DB, dialect db.Dialect) *SQLBackend {
	return &SQLBackend{db: conn, dialect: dialect}
}

func (b *SQLBackend) ForVisitor(visitorID string) KV {
	return &sqlKV{backend: b, visitorID: visitorID}
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}

type sqlKV struct {
	backend   *SQLBackend
	visitorID string
}

func (s *sqlKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.backend.db.QueryRowContext(ctx, s.backend.dialect.Rebind(`
		SELECT value FROM visitor_storage
		WHERE visitor_id = ? AND storage_key = ?
	`), s.visitorID, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return []byte(value), true, nil
}

func (s *sqlKV) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.backend.db.ExecContext(ctx, s.backend.dialect.Rebind(`
		INSERT INTO visitor_storage (visitor_id, storage_key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, storage_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`), s.visitorID, key, string(value), time.Now().UTC())

	return err
}
