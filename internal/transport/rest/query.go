package rest

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// rangeQuery is the common query string of ledger read endpoints.
type rangeQuery struct {
	UserID       uuid.UUID
	Limit        *int64
	Offset       *int64
	LoggedBefore *time.Time
	LoggedAfter  *time.Time
}

func parseRangeQuery(q url.Values) (rangeQuery, error) {
	var (
		rq   rangeQuery
		errs []domain.FieldError
		err  error
	)

	if rq.UserID, err = parseUUID(q.Get("user_id")); err != nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must be a UUID"})
	}
	if rq.Limit, err = parseOptionalInt(q.Get("limit")); err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	if rq.Offset, err = parseOptionalInt(q.Get("offset")); err != nil {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}
	if rq.LoggedBefore, err = parseOptionalTime(q.Get("logged_before_date")); err != nil {
		errs = append(errs, domain.FieldError{Field: "logged_before_date", Message: "must be an RFC 3339 timestamp"})
	}
	if rq.LoggedAfter, err = parseOptionalTime(q.Get("logged_after_date")); err != nil {
		errs = append(errs, domain.FieldError{Field: "logged_after_date", Message: "must be an RFC 3339 timestamp"})
	}

	if len(errs) > 0 {
		return rangeQuery{}, domain.NewValidationErrors(errs)
	}
	return rq, nil
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, strconv.ErrSyntax
	}
	return uuid.Parse(s)
}

func parseOptionalInt(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
