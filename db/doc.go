// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles SQL connections and schema creation.

# Connections

Open registers both drivers and verifies the connection:

	conn, err := db.Open(db.DialectSQLite, "hidden-pages.db")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

SQLite uses modernc.org/sqlite (no cgo) and is limited to one open
connection. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - visitor_storage: one value per (visitor_id, storage_key)

Progress is stored as a JSON array under storage_key 'passed_passwords'.

# Placeholders

Queries are written with ? and passed through Dialect.Rebind, which numbers
them ($1, $2, ...) for PostgreSQL.
*/
package db
