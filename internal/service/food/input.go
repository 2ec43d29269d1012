package food

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// NewEntry is one food entry as submitted by a client.
type NewEntry struct {
	Description    string
	Calories       *float64
	Carbs          *float64
	Protein        *float64
	Fats           *float64
	Micronutrients json.RawMessage
	LoggedAt       *time.Time
}

// CreateEntriesInput holds a batch of food entries for one user.
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
		prefix := fmt.Sprintf("food_entries[%d]", idx)
		if strings.TrimSpace(e.Description) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".description", Message: "required"})
		}
		for _, n := range []struct {
			name string
			v    *float64
		}{
			{MetricCalories, e.Calories},
			{MetricCarbs, e.Carbs},
			{MetricProtein, e.Protein},
			{MetricFats, e.Fats},
		} {
			if n.v != nil && *n.v < 0 {
				errs = append(errs, domain.FieldError{Field: prefix + "." + n.name, Message: "must not be negative"})
			}
		}
		if len(e.Micronutrients) > 0 && !json.Valid(e.Micronutrients) {
			errs = append(errs, domain.FieldError{Field: prefix + ".micronutrients", Message: "must be valid JSON"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReadEntriesInput selects a window of a user's food entries.
type ReadEntriesInput = domain.RangeQuery
