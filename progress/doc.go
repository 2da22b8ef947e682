// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package progress records which puzzles a visitor has solved.

# Store

Store is the port the session controller depends on:

	store := progress.ForVisitor(backend, visitorID)
	err := store.MarkResolved(ctx, fp)
	resolved, err := store.ListResolved(ctx)

The resolved list is append-only and keeps duplicates. It is stored as one JSON
array under StorageKey ("passed_passwords"); a missing key means no progress.
A payload that fails to decode returns an error wrapping ErrCorruptState.

MarkResolved reads, appends, and writes back the whole list. Two concurrent
submissions from the same visitor can drop one entry.

# Backends

  - MemoryBackend: process memory, for tests and throwaway servers
  - SQLBackend: visitor_storage table in SQLite or PostgreSQL
  - BadgerBackend: embedded badger database, keys visitor/<id>/<key>
*/
package progress
