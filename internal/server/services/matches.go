package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/campusmatch/internal/server/matching"
	"github.com/dmitrijs2005/campusmatch/internal/server/repositories/repomanager"
)

// MatchResult is the ranked candidate list for one subject.
type MatchResult struct {
	SubjectName string
	Matches     []matching.Match
}

// MatchService is the Match Engine: it partitions users by faculty and ranks
// them with matching.Rank. The visibility flag is not consulted.
type MatchService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMatchService(db *sql.DB, m repomanager.RepositoryManager) *MatchService {
	return &MatchService{db: db, repomanager: m}
}

// Match ranks every other user of the subject's faculty. An unknown subject
// yields common.ErrorNotFound; no matches is an empty, non-nil list.
func (s *MatchService) Match(ctx context.Context, userID int64) (*MatchResult, error) {
	repo := s.repomanager.Users(s.db)

	subject, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error getting subject %d: %w", userID, err)
	}

	candidates, err := repo.ListByFaculty(ctx, subject.Faculty, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing candidates: %w", err)
	}

	return &MatchResult{
		SubjectName: subject.Name,
		Matches:     matching.Rank(subject, candidates),
	}, nil
}
