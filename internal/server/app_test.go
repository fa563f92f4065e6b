package server

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/campusmatch/internal/server/config"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	var c config.Config
	c.LoadDefaults()
	c.HTTPAddr = "127.0.0.1:0"
	c.LogLevel = "error"
	c.ShutdownTimeout = time.Second
	c.DataDir = filepath.Join(t.TempDir(), "data")
	c.DatabaseDSN = filepath.Join(c.DataDir, "db", "campusmatch.db")
	return &c
}

func TestNewApp_CreatesStoreAndRunsUntilCancelled(t *testing.T) {
	c := testConfig(t)

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	_, err = os.Stat(c.DatabaseDSN)
	require.NoError(t, err, "database file should exist under the data dir")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}

	require.Error(t, app.db.PingContext(context.Background()), "store should be closed")
}

func TestNewApp_InMemorySkipsDataDir(t *testing.T) {
	c := testConfig(t)
	c.DatabaseDSN = ":memory:"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	_, err = os.Stat(c.DataDir)
	require.True(t, os.IsNotExist(err))
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := testConfig(t)
	c.LogFormat = "xml"

	_, err := NewApp(context.Background(), c)
	require.ErrorContains(t, err, "invalid configuration")
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openStore
	t.Cleanup(func() { openStore = orig })
	openStore = func(context.Context, string) (*sql.DB, error) { return nil, errors.New("no disk") }

	c := testConfig(t)
	c.DatabaseDSN = ":memory:"

	_, err := NewApp(context.Background(), c)
	require.ErrorContains(t, err, "db init error")
}

type brokenMigrations struct{ repomanager.RepositoryManager }

func (brokenMigrations) RunMigrations(context.Context, *sql.DB) error { return errors.New("bad sql") }

func TestNewApp_MigrationError(t *testing.T) {
	orig := newRepositoryManager
	t.Cleanup(func() { newRepositoryManager = orig })
	newRepositoryManager = func() repomanager.RepositoryManager {
		return brokenMigrations{orig()}
	}

	c := testConfig(t)
	c.DatabaseDSN = ":memory:"

	_, err := NewApp(context.Background(), c)
	require.ErrorContains(t, err, "db migration error")
}
