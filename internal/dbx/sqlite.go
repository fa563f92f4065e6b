package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// BusyTimeout is how long a connection waits for a competing writer before
// giving up with SQLITE_BUSY.
const BusyTimeout = 5 * time.Second

// OpenSQLite opens the embedded store behind dsn and checks it is reachable.
//
// In-memory databases live per connection, so for those the pool is pinned to
// a single connection; every caller then shares the same database.
// File-backed DSNs get a busy timeout and immediate write transactions on
// every pooled connection (see FileDSN).
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if !IsMemoryDSN(dsn) {
		dsn = FileDSN(dsn)
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if IsMemoryDSN(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// FileDSN appends the connection parameters modernc.org/sqlite applies to
// each new connection: a busy_timeout pragma and _txlock=immediate, so
// transactions take the write lock at BEGIN and wait for it instead of
// failing on upgrade. Parameters already present in dsn are left alone.
func FileDSN(dsn string) string {
	var params []string
	if !strings.Contains(dsn, "busy_timeout") {
		params = append(params, fmt.Sprintf("_pragma=busy_timeout(%d)", BusyTimeout.Milliseconds()))
	}
	if !strings.Contains(dsn, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// IsMemoryDSN reports whether dsn points at an in-memory SQLite database.
func IsMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// IsUniqueViolation reports whether err was raised by a UNIQUE or PRIMARY KEY
// constraint at commit/insert time.
func IsUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// primary code only, when extended result codes are off
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}
