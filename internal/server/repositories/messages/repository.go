// Package messages declares the Message Store contract and its SQLite
// implementation. Messages are append-only.
package messages

import (
	"context"

	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

type Repository interface {
	// Create appends msg and fills in the assigned ID.
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)

	// SelectConversation returns every message sent from a to b or from b
	// to a, in ascending ID order.
	SelectConversation(ctx context.Context, a, b string) ([]*models.Message, error)
}
