// Package food implements the food ledger: batch writes and aggregated
// range reads of calories and macronutrients.
package food

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
	CreateBatch(ctx context.Context, entries []domain.FoodEntry) error
	ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.FoodEntry, error)
}

type userChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides food ledger operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	users   userChecker
	cfg     config.LedgerConfig
	now     func() time.Time
}

// NewService creates a new food service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	users userChecker,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		log:     log.With("service", "food"),
		entries: entries,
		users:   users,
		cfg:     cfg,
		now:     time.Now,
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
