// Package activity implements the activity ledger.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/config"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

type entryRepo interface {
	CreateBatch(ctx context.Context, entries []domain.ActivityEntry) error
	ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.ActivityEntry, error)
}

type userChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides activity ledger operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	users   userChecker
	cfg     config.LedgerConfig
	now     func() time.Time
}

// NewService creates a new activity service.
func NewService(log *slog.Logger, entries entryRepo, users userChecker, cfg config.LedgerConfig) *Service {
	return &Service{
		log:     log.With("service", "activity"),
		entries: entries,
		users:   users,
		cfg:     cfg,
		now:     time.Now,
	}
}

// NewEntry is one activity as submitted by a client.
type NewEntry struct {
	Activity     string
	ActivityType domain.ActivityType
	ActivityInfo json.RawMessage
	LoggedAt     *time.Time
}

// CreateEntriesInput holds a batch of activities for one user.
type CreateEntriesInput struct {
	UserID  uuid.UUID
	Entries []NewEntry
}

// Validate checks all fields and collects all errors.
func (i CreateEntriesInput) Validate(maxBatch int) error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(i.Entries) == 0 {
		errs = append(errs, domain.FieldError{Field: "entries", Message: "cannot create zero entries"})
	}
	if maxBatch > 0 && len(i.Entries) > maxBatch {
		errs = append(errs, domain.FieldError{Field: "entries", Message: fmt.Sprintf("max %d entries per request", maxBatch)})
	}
	for idx, e := range i.Entries {
		prefix := fmt.Sprintf("activity_entries[%d]", idx)
		if strings.TrimSpace(e.Activity) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".activity", Message: "required"})
		}
		if !e.ActivityType.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + ".activity_type", Message: fmt.Sprintf("unknown activity type %q", e.ActivityType)})
		}
		if len(e.ActivityInfo) > 0 && !json.Valid(e.ActivityInfo) {
			errs = append(errs, domain.FieldError{Field: prefix + ".activity_info", Message: "must be valid JSON"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReadEntriesInput selects a window of a user's activities.
type ReadEntriesInput = domain.RangeQuery

// FoundEntry is the projection of an activity returned to clients.
type FoundEntry struct {
	Activity     string
	ActivityType domain.ActivityType
	ActivityInfo json.RawMessage
	LoggedAt     time.Time
}

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
	entries := make([]domain.ActivityEntry, 0, len(input.Entries))
	for _, e := range input.Entries {
		loggedAt := now
		if e.LoggedAt != nil {
			loggedAt = e.LoggedAt.UTC()
		}
		entries = append(entries, domain.ActivityEntry{
			UserID:       input.UserID,
			CreatedAt:    now,
			LoggedAt:     loggedAt,
			Activity:     domain.CleanText(e.Activity),
			ActivityType: e.ActivityType,
			ActivityInfo: e.ActivityInfo,
		})
	}

	if err := s.entries.CreateBatch(ctx, entries); err != nil {
		return fmt.Errorf("create activity entries: %w", err)
	}

	s.log.InfoContext(ctx, "activity entries created",
		slog.String("user_id", input.UserID.String()),
		slog.Int("count", len(entries)),
	)
	return nil
}

// ReadEntries returns the user's activities in the requested window,
// newest first.
func (s *Service) ReadEntries(ctx context.Context, input ReadEntriesInput) ([]FoundEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	entries, err := s.entries.ReadRange(ctx, input.UserID, input.Filter(s.cfg.DefaultPageSize))
	if err != nil {
		return nil, fmt.Errorf("read activity entries: %w", err)
	}

	found, _ := domain.Fold(entries, nil, func(e domain.ActivityEntry) FoundEntry {
		return FoundEntry{
			Activity:     e.Activity,
			ActivityType: e.ActivityType,
			ActivityInfo: e.ActivityInfo,
			LoggedAt:     e.LoggedAt,
		}
	})
	return found, nil
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
