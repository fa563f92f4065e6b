package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/campusmatch/internal/dbx"
	"github.com/dmitrijs2005/campusmatch/internal/server/models"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
)

// MessageService is the Message Store. Names are not checked against the
// user directory.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send appends a message from one name to another.
func (s *MessageService) Send(ctx context.Context, from, to, text string) error {
	msg := &models.Message{From: from, To: to, Text: text}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.repomanager.Messages(tx).Create(ctx, msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}

	return nil
}

// ReadConversation returns the messages exchanged between a and b in either
// direction, oldest first.
func (s *MessageService) ReadConversation(ctx context.Context, a, b string) ([]*models.Message, error) {
	msgs, err := s.repomanager.Messages(s.db).SelectConversation(ctx, a, b)
	if err != nil {
		return nil, fmt.Errorf("error reading conversation: %w", err)
	}
	if msgs == nil {
		msgs = []*models.Message{}
	}
	return msgs, nil
}
