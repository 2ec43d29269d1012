package mood

import (
	"context"
	"fmt"
	"log/slog"

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
	entries := make([]domain.MoodEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		loggedAt := now
		if e.LoggedAt != nil {
			loggedAt = e.LoggedAt.UTC()
		}
		entries = append(entries, domain.MoodEntry{
			UserID:    input.UserID,
			CreatedAt: now,
			LoggedAt:  loggedAt,
			Mood:      e.Mood,
			Energy:    e.Energy,
			Sleep:     e.Sleep,
			Notes:     domain.TrimOptionalText(e.Notes),
		})
	}

	if err := s.entries.CreateBatch(ctx, entries); err != nil {
		return fmt.Errorf("create mood entries: %w", err)
	}

	s.log.InfoContext(ctx, "mood entries created",
		slog.String("user_id", input.UserID.String()),
		slog.Int("count", len(entries)),
	)

	return nil
}

// ReadEntries returns the user's mood entries in the requested window,
// newest first, with per-scale totals.
func (s *Service) ReadEntries(ctx context.Context, input ReadEntriesInput) (*ReadEntriesResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ReadRange(ctx, input.UserID, input.Filter(s.cfg.DefaultPageSize))
	if err != nil {
		return nil, fmt.Errorf("read mood entries: %w", err)
	}

	result := aggregate(entries)
	return &result, nil
}
