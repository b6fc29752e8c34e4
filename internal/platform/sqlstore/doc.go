// Package sqlstore implements the store interfaces on database/sql.
//
// The same store types serve SQLite (modernc.org/sqlite) and PostgreSQL
// (pgx stdlib). Queries are written with ? placeholders and rebound per
// dialect; inserts read the generated key back through RETURNING, which
// both backends support.
//
// Stores accept a store.DBTX so they can run against a pool or a
// transaction. Multi-statement operations (cascading deletes, mission
// creation with parent checks) must run inside store.RunInTransaction to be
// atomic; use WithTx to bind a store to the transaction.
package sqlstore
