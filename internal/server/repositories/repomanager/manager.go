package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/messages"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, plus the schema bootstrap.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
}
