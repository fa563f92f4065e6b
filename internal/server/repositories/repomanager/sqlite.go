// Package repomanager provides the SQLite RepositoryManager, wiring together
// repository constructors and the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/migrations"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/messages"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/users"
)

type SQLiteRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Messages returns a messages.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Messages(db dbx.DBTX) messages.Repository {
	return messages.NewSQLiteRepository(db)
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// RunMigrations creates the users and messages tables when absent.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
