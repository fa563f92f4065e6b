package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (sender, recipient, body)
		 VALUES (?, ?, ?)
		 RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, msg.From, msg.To, msg.Text).Scan(&msg.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *SQLiteRepository) SelectConversation(ctx context.Context, a, b string) ([]*models.Message, error) {
	query :=
		`SELECT id, sender, recipient, body FROM messages
		 WHERE (sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)
		 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, a, b, b, a)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.From, &m.To, &m.Text); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
