// Package database opens the relational store named by the configured
// connection URL and applies the embedded schema migrations.
//
// Two backends are supported: an embedded SQLite file (the default,
// sqlite://app.db) through modernc.org/sqlite, and PostgreSQL through the pgx
// stdlib driver. Queries are written once with ? placeholders and adapted to
// the active dialect with Rebind.
package database
