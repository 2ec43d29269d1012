package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default pagination for range reads.
const (
	DefaultRangeLimit  int64 = 10000
	DefaultRangeOffset int64 = 0
)

// RangeFilter selects ledger records by logged_at. Both bounds are
// inclusive; a nil bound is unbounded.
type RangeFilter struct {
	Before *time.Time
	After  *time.Time
	Limit  int64
	Offset int64
}

// RangeQuery is a range read as submitted by a client. Nil pagination
// fields fall back to defaults when resolved by Filter.
type RangeQuery struct {
	UserID       uuid.UUID
	LoggedBefore *time.Time
	LoggedAfter  *time.Time
	Limit        *int64
	Offset       *int64
}

// Validate checks all fields and collects all errors.
func (q RangeQuery) Validate() error {
	var errs []FieldError
	if q.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if q.Limit != nil && *q.Limit < 0 {
		errs = append(errs, FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if q.Offset != nil && *q.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Filter resolves the query into a RangeFilter. defaultLimit applies when
// no limit was submitted; a non-positive defaultLimit means DefaultRangeLimit.
func (q RangeQuery) Filter(defaultLimit int64) RangeFilter {
	f := RangeFilter{
		Before: q.LoggedBefore,
		After:  q.LoggedAfter,
		Limit:  defaultLimit,
		Offset: DefaultRangeOffset,
	}
	if f.Limit <= 0 {
		f.Limit = DefaultRangeLimit
	}
	if q.Limit != nil {
		f.Limit = *q.Limit
	}
	if q.Offset != nil {
		f.Offset = *q.Offset
	}
	return f
}
