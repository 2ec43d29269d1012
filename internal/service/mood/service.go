// Package mood implements the mood ledger and the per-user labels that
// give meaning to each point of the mood, energy and sleep scales.
package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

type entryRepo interface {
	CreateBatch(ctx context.Context, entries []domain.MoodEntry) error
	ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.MoodEntry, error)
}

type assignmentRepo interface {
	FindByIndex(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID, index domain.Rating) (*domain.Assignment, error)
	Upsert(ctx context.Context, a domain.Assignment) error
	ListByUser(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID) ([]domain.Assignment, error)
}

type userChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides mood entry and assignment operations.
type Service struct {
	log         *slog.Logger
	entries     entryRepo
	assignments assignmentRepo
	users       userChecker
	cfg         config.LedgerConfig
	now         func() time.Time
}

// NewService creates a new mood service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	assignments assignmentRepo,
	users userChecker,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		log:         log.With("service", "mood"),
		entries:     entries,
		assignments: assignments,
		users:       users,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *Service) ensureUser(ctx context.Context, userID uuid.UUID) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "user not found", slog.String("user_id", userID.String()))
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}
