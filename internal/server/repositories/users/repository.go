// Package users declares the User Directory storage contract and its SQLite
// implementation. The stored interest string never leaves this package: rows
// are returned with their interests parsed into a set.
package users

import (
	"context"

	"github.com/dmitrijs2005/campusmatch/internal/server/models"
)

type Repository interface {
	// Create inserts user with the given normalized interest tokens (kept
	// as supplied, duplicates included) and fills in the assigned ID.
	// A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User, tokens []string) (*models.User, error)

	// GetByID returns common.ErrorNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail returns common.ErrorNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ListByFaculty returns users whose faculty equals faculty exactly,
	// excluding excludeID, in ascending ID order.
	ListByFaculty(ctx context.Context, faculty string, excludeID int64) ([]*models.User, error)
}
