// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of the relational backend (SQLite or PostgreSQL) in use.
//
// Mutating operations that touch more than one row (cascading deletes,
// creating a mission after checking its parents) are expected to run inside
// RunInTransaction using the stores' WithTx variants, so that each request is
// committed or rolled back as one unit of work.
package store
