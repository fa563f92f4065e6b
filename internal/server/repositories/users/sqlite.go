package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/campusmatch/internal/common"
	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/interests"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

const selectColumns = `SELECT id, name, email, faculty, visible, mission, interests FROM users`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User, tokens []string) (*models.User, error) {
	query :=
		`INSERT INTO users (name, email, faculty, visible, mission, interests)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, nullString(user.Email), user.Faculty, user.Visible, user.Mission, interests.Join(tokens),
	).Scan(&user.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %q: %w", user.Email, common.ErrorConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Interests = interests.NewSet(tokens...)
	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	return scanOne(row)
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE email = ?`, email)
	return scanOne(row)
}

func (r *SQLiteRepository) ListByFaculty(ctx context.Context, faculty string, excludeID int64) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		selectColumns+` WHERE faculty = ? AND id <> ? ORDER BY id ASC`, faculty, excludeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.User, error) {
	var (
		u      models.User
		email  sql.NullString
		stored string
	)
	if err := s.Scan(&u.ID, &u.Name, &email, &u.Faculty, &u.Visible, &u.Mission, &stored); err != nil {
		return nil, err
	}
	u.Email = email.String
	u.Interests = interests.Parse(stored)
	return &u, nil
}

func scanOne(row *sql.Row) (*models.User, error) {
	u, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
