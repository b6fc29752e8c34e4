package database

import (
	"fmt"
	"strings"
)

// Dialect identifies the SQL backend behind a connection.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// sqlitePragmas are applied to every pooled SQLite connection.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Target is a parsed connection URL.
type Target struct {
	Dialect Dialect
	// Driver is the database/sql driver name.
	Driver string
	// DSN is the driver-specific data source name.
	DSN string
	// Path is the SQLite file path; empty for PostgreSQL and in-memory databases.
	Path string
}

// ParseURL resolves a configured connection URL into a driver and DSN.
//
//	sqlite://app.db            relative file
//	sqlite:///var/lib/app.db   absolute file
//	sqlite://:memory:          in-memory database
//	file:app.db                relative file
//	postgres://... postgresql://...
func ParseURL(raw string) (Target, error) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Target{Dialect: DialectPostgres, Driver: "pgx", DSN: trimmed}, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return sqliteTarget(trimmed[len("sqlite://"):])
	case strings.HasPrefix(lower, "file:"):
		return sqliteTarget(trimmed[len("file:"):])
	default:
		return Target{}, fmt.Errorf("unsupported database url scheme: %q", schemeOf(trimmed))
	}
}

func sqliteTarget(rest string) (Target, error) {
	path, query, _ := strings.Cut(rest, "?")
	if path == "" {
		return Target{}, fmt.Errorf("sqlite database path is required")
	}

	params := sqlitePragmas
	if query != "" {
		params = query + "&" + sqlitePragmas
	}

	target := Target{
		Dialect: DialectSQLite,
		Driver:  "sqlite",
		DSN:     "file:" + path + "?" + params,
	}
	if path != ":memory:" {
		target.Path = path
	}
	return target, nil
}

func schemeOf(raw string) string {
	if scheme, _, ok := strings.Cut(raw, ":"); ok {
		return scheme
	}
	return raw
}

// Rebind rewrites ? placeholders into the dialect's positional form.
// Queries in this module never contain a literal question mark.
func Rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
