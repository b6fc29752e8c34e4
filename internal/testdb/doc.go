// Package testdb provides isolated, migrated databases for tests.
//
// By default every call to Open creates a fresh SQLite file in the test's
// temporary directory, so tests never share state and may run in parallel.
// When COSMIC_TEST_DATABASE_URL names a PostgreSQL database, Open connects
// to it instead and truncates every table when the test finishes; tests
// sharing one PostgreSQL database must not run in parallel.
//
// # Basic Usage
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    scientists := sqlstore.NewScientistStore(db, db.Dialect, nil)
//	    ...
//	}
//
// WithTx runs a function inside a transaction that is always rolled back,
// for tests that only need to observe their own writes.
package testdb
