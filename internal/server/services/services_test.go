package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/config"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/messages"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/users"
)

const testSecret = "identity-secret"

// --- helpers ---

func newStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()
	db, err := dbx.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, rm.RunMigrations(ctx, db))
	return db, rm
}

// newFileStore is newStore over a file-backed database, so the pool hands out
// several connections.
func newFileStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()
	db, err := dbx.OpenSQLite(ctx, filepath.Join(t.TempDir(), "campusmatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, rm.RunMigrations(ctx, db))
	return db, rm
}

func testConfig() *config.Config {
	return &config.Config{IdentitySecret: testSecret}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// failingRepos returns errBoom from every repository call.
type failingRepos struct{}

func (failingRepos) RunMigrations(context.Context, *sql.DB) error { return nil }
func (failingRepos) Users(dbx.DBTX) users.Repository             { return failingUsers{} }
func (failingRepos) Messages(dbx.DBTX) messages.Repository       { return failingMessages{} }

type failingUsers struct{}

func (failingUsers) Create(context.Context, *models.User, []string) (*models.User, error) {
	return nil, errBoom{}
}
func (failingUsers) GetByID(context.Context, int64) (*models.User, error) { return nil, errBoom{} }
func (failingUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errBoom{}
}
func (failingUsers) ListByFaculty(context.Context, string, int64) ([]*models.User, error) {
	return nil, errBoom{}
}

type failingMessages struct{}

func (failingMessages) Create(context.Context, *models.Message) (*models.Message, error) {
	return nil, errBoom{}
}
func (failingMessages) SelectConversation(context.Context, string, string) ([]*models.Message, error) {
	return nil, errBoom{}
}

var _ repomanager.RepositoryManager = failingRepos{}
