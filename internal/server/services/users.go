package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/campusmatch/internal/common"
	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/auth"
	"github.com/dmitrijs2005/campusmatch/internal/server/config"
	"github.com/dmitrijs2005/campusmatch/internal/server/interests"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
)

// RegisterInput is a registration request after shape validation.
type RegisterInput struct {
	Name      string
	Email     string
	Faculty   string
	Visible   bool
	Mission   string
	Interests []string
}

// EmailLookup is the result of checking whether an email is registered.
// ID and Name are set only when Exists is true.
type EmailLookup struct {
	Exists bool
	ID     int64
	Name   string
}

// UserService is the User Directory.
type UserService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	identitySecret []byte
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:             db,
		repomanager:    m,
		identitySecret: []byte(cfg.IdentitySecret),
	}
}

// Register normalizes the interests, stores a new user and returns it with
// the assigned ID. A duplicate email yields common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	user := &models.User{
		Name:    in.Name,
		Email:   in.Email,
		Faculty: in.Faculty,
		Visible: in.Visible,
		Mission: in.Mission,
	}
	tokens := interests.Normalize(in.Interests)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(tx).Create(ctx, user, tokens)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// FindByEmail reports whether email belongs to a registered user.
// An unknown email is not an error.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*EmailLookup, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &EmailLookup{}, nil
		}
		return nil, fmt.Errorf("error searching user by email: %w", err)
	}

	return &EmailLookup{Exists: true, ID: user.ID, Name: user.Name}, nil
}

// FindByIdentityToken verifies an identity token and looks up its email claim.
func (s *UserService) FindByIdentityToken(ctx context.Context, token string) (*EmailLookup, error) {
	email, err := auth.EmailFromToken(token, s.identitySecret)
	if err != nil {
		return nil, err
	}
	return s.FindByEmail(ctx, email)
}

// Get returns the user with id or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}
