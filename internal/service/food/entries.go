package food

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// CreateEntries validates the batch, checks the owner exists and persists
// all entries atomically.
func (s *Service) CreateEntries(ctx context.Context, input CreateEntriesInput) error {
	if err := input.Validate(s.cfg.MaxBatchSize); err != nil {
		return err
	}

	if err := s.ensureUser(ctx, input.UserID); err != nil {
		return err
	}

	now := s.now().UTC()
	entries := make([]domain.FoodEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		loggedAt := now
		if e.LoggedAt != nil {
			loggedAt = e.LoggedAt.UTC()
		}
		entries = append(entries, domain.FoodEntry{
			UserID:         input.UserID,
			CreatedAt:      now,
			LoggedAt:       loggedAt,
			Description:    strings.TrimSpace(e.Description),
			Calories:       e.Calories,
			Carbs:          e.Carbs,
			Protein:        e.Protein,
			Fats:           e.Fats,
			Micronutrients: e.Micronutrients,
		})
	}

	if err := s.entries.CreateBatch(ctx, entries); err != nil {
		return fmt.Errorf("create food entries: %w", err)
	}

	s.log.InfoContext(ctx, "food entries created",
		slog.String("user_id", input.UserID.String()),
		slog.Int("count", len(entries)),
	)

	return nil
}

// ReadEntries returns the user's food entries in the requested window,
// newest first, together with calorie and macro totals.
func (s *Service) ReadEntries(ctx context.Context, input ReadEntriesInput) (*ReadEntriesResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ReadRange(ctx, input.UserID, input.Filter(s.cfg.DefaultPageSize))
	if err != nil {
		return nil, fmt.Errorf("read food entries: %w", err)
	}

	result := aggregate(entries)
	return &result, nil
}
