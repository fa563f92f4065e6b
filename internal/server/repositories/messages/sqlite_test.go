package messages

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/migrations"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := dbx.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(ctx, db))
	return db
}

func send(t *testing.T, r *SQLiteRepository, from, to, text string) *models.Message {
	t.Helper()
	m, err := r.Create(context.Background(), &models.Message{From: from, To: to, Text: text})
	require.NoError(t, err)
	return m
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	m1 := send(t, r, "ana", "ben", "hi")
	m2 := send(t, r, "ben", "ana", "hey")

	assert.Equal(t, int64(1), m1.ID)
	assert.Equal(t, int64(2), m2.ID)
}

func TestSelectConversation_BothDirectionsInInsertionOrder(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	send(t, r, "ana", "ben", "one")
	send(t, r, "ana", "cleo", "elsewhere")
	send(t, r, "ben", "ana", "two")
	send(t, r, "ana", "ben", "three")

	forward, err := r.SelectConversation(ctx, "ana", "ben")
	require.NoError(t, err)
	require.Len(t, forward, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{forward[0].Text, forward[1].Text, forward[2].Text})
	assert.Equal(t, "ben", forward[1].From)
	assert.Equal(t, "ana", forward[1].To)

	backward, err := r.SelectConversation(ctx, "ben", "ana")
	require.NoError(t, err)
	assert.Equal(t, forward, backward)
}

func TestSelectConversation_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.SelectConversation(context.Background(), "nobody", "else")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectConversation_BindsPairTwice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)

	rows := sqlmock.NewRows([]string{"id", "sender", "recipient", "body"}).
		AddRow(int64(7), "b", "a", "yo")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, sender, recipient, body FROM messages`)).
		WithArgs("a", "b", "b", "a").
		WillReturnRows(rows)

	got, err := r.SelectConversation(context.Background(), "a", "b")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, &models.Message{ID: 7, From: "b", To: "a", Text: "yo"}, got[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO messages`).WillReturnError(errors.New("disk full"))
	_, err = r.Create(ctx, &models.Message{From: "a", To: "b", Text: "x"})
	require.ErrorContains(t, err, "db error: disk full")

	mock.ExpectQuery(`SELECT id, sender`).WillReturnError(errors.New("db down"))
	_, err = r.SelectConversation(ctx, "a", "b")
	require.ErrorContains(t, err, "db error: db down")
}
