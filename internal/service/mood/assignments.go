package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// CreateAssignments reconciles the submitted labels for mood, then energy,
// then sleep. Kinds are not rolled back together: a failure in one kind
// leaves earlier kinds applied, and the returned StepError asks the caller
// to resubmit everything. Resubmission is safe because Reconcile is
// idempotent.
func (s *Service) CreateAssignments(ctx context.Context, input CreateAssignmentsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.ensureUser(ctx, input.UserID); err != nil {
		return err
	}

	for _, kind := range domain.AssignmentKinds {
		if err := s.Reconcile(ctx, input.UserID, kind, input.Items(kind)); err != nil {
			return err
		}
	}

	s.log.InfoContext(ctx, "assignments reconciled",
		slog.String("user_id", input.UserID.String()),
		slog.Int("mood", len(input.Mood)),
		slog.Int("energy", len(input.Energy)),
		slog.Int("sleep", len(input.Sleep)),
	)

	return nil
}

// Reconcile writes each item of one kind, keyed by (user, kind, index).
// An existing assignment keeps its ID and takes the new value; a missing
// one is inserted. Every index is bounds-checked before any I/O.
func (s *Service) Reconcile(ctx context.Context, userID uuid.UUID, kind domain.AssignmentKind, items []AssignmentItem) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown assignment kind %q", kind))
	}

	indexes := make([]domain.Rating, len(items))
	for i, item := range items {
		r, err := domain.NewRating(item.Index)
		if err != nil {
			return domain.NewValidationError(kind.String()+"_assignments", kind.String()+" rating out of range")
		}
		indexes[i] = r
	}

	for i, item := range items {
		a := domain.Assignment{
			UserID: userID,
			Kind:   kind,
			Value:  domain.CleanText(item.Value),
			Index:  indexes[i],
		}

		existing, err := s.assignments.FindByIndex(ctx, kind, userID, a.Index)
		switch {
		case err == nil:
			a.ID = existing.ID
		case errors.Is(err, domain.ErrNotFound):
			id := uuid.New()
			a.ID = &id
		default:
			return s.stepFailed(ctx, kind, a, err)
		}

		if err := s.assignments.Upsert(ctx, a); err != nil {
			return s.stepFailed(ctx, kind, a, err)
		}
	}

	return nil
}

func (s *Service) stepFailed(ctx context.Context, kind domain.AssignmentKind, a domain.Assignment, err error) error {
	s.log.ErrorContext(ctx, "failed to upsert assignment",
		slog.String("kind", kind.String()),
		slog.String("user_id", a.UserID.String()),
		slog.Uint64("index", uint64(a.Index.Uint())),
		slog.String("error", err.Error()),
	)
	return &domain.StepError{
		Context: fmt.Sprintf("failed processing %s assignment, please try again with all", kind),
		Err:     err,
	}
}

// ListAssignments returns every label the user has set, per scale.
func (s *Service) ListAssignments(ctx context.Context, userID uuid.UUID) (*AssignmentsResult, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	var res AssignmentsResult
	for _, kind := range domain.AssignmentKinds {
		list, err := s.assignments.ListByUser(ctx, kind, userID)
		if err != nil {
			return nil, fmt.Errorf("list %s assignments: %w", kind, err)
		}
		switch kind {
		case domain.AssignmentKindMood:
			res.Mood = list
		case domain.AssignmentKindEnergy:
			res.Energy = list
		case domain.AssignmentKindSleep:
			res.Sleep = list
		}
	}

	return &res, nil
}
