package mood

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// NewEntry is one mood entry as submitted by a client. Ratings arrive
// already bounded by domain.Rating decoding.
type NewEntry struct {
	Mood     *domain.Rating
	Energy   *domain.Rating
	Sleep    *domain.Rating
	Notes    *string
	LoggedAt *time.Time
}

// CreateEntriesInput holds a batch of mood entries for one user.
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
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReadEntriesInput selects a window of a user's mood entries.
type ReadEntriesInput = domain.RangeQuery

// AssignmentItem labels one point of a rating scale. Index is kept wide so
// that out-of-range submissions reach the reconciler's bounds check.
type AssignmentItem struct {
	Value string
	Index int64
}

// CreateAssignmentsInput carries the labels submitted for each scale.
type CreateAssignmentsInput struct {
	UserID uuid.UUID
	Mood   []AssignmentItem
	Energy []AssignmentItem
	Sleep  []AssignmentItem
}

// Items returns the submitted items of one kind.
func (i CreateAssignmentsInput) Items(kind domain.AssignmentKind) []AssignmentItem {
	switch kind {
	case domain.AssignmentKindMood:
		return i.Mood
	case domain.AssignmentKindEnergy:
		return i.Energy
	case domain.AssignmentKindSleep:
		return i.Sleep
	}
	return nil
}

// Validate checks all fields and collects all errors. Index bounds are
// checked per kind by Reconcile.
func (i CreateAssignmentsInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	for _, kind := range domain.AssignmentKinds {
		for idx, item := range i.Items(kind) {
			if strings.TrimSpace(item.Value) == "" {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s_assignments[%d].value", kind, idx),
					Message: "required",
				})
			}
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
