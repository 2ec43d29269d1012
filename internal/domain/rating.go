package domain

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Rating bounds, both inclusive.
const (
	RatingMin = 0
	RatingMax = 10
)

// Rating is a score in [RatingMin, RatingMax]. The zero value is a valid
// rating of 0; any other value must come from NewRating or UnmarshalJSON.
type Rating struct {
	v uint8
}

// RatingError reports an integer outside the rating bounds.
type RatingError struct {
	Value    string
	Negative bool
}

func (e *RatingError) Error() string {
	if e.Negative {
		return fmt.Sprintf("ratings cannot be negative, but got %s instead", e.Value)
	}
	return fmt.Sprintf("rating must be between %d and %d, but got %s instead", RatingMin, RatingMax, e.Value)
}

func (e *RatingError) Unwrap() error { return ErrValidation }

// NewRating validates v and returns it as a Rating.
func NewRating[T constraints.Integer](v T) (Rating, error) {
	if v < 0 {
		return Rating{}, &RatingError{Value: fmt.Sprint(v), Negative: true}
	}
	if uint64(v) > RatingMax {
		return Rating{}, &RatingError{Value: fmt.Sprint(v)}
	}
	return Rating{v: uint8(v)}, nil
}

// MustRating is NewRating for constants. It panics on an invalid value.
func MustRating[T constraints.Integer](v T) Rating {
	r, err := NewRating(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Uint returns the rating as an unsigned integer.
func (r Rating) Uint() uint { return uint(r.v) }

// Int16 returns the rating in its storage width.
func (r Rating) Int16() int16 { return int16(r.v) }

func (r Rating) String() string { return strconv.Itoa(int(r.v)) }

func (r Rating) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(r.v), 10), nil
}

// UnmarshalJSON accepts any JSON integer literal, however wide, and applies
// the rating bounds. Fractions, exponents and non-numbers are rejected.
func (r *Rating) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return &RatingError{Value: s, Negative: s[0] == '-'}
		}
		return NewValidationError("rating", fmt.Sprintf("expected an integer, got %s", s))
	}

	parsed, err := NewRating(n)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RatingPtrFromInt16 converts a nullable storage value into a rating.
func RatingPtrFromInt16(v *int16) (*Rating, error) {
	if v == nil {
		return nil, nil
	}
	r, err := NewRating(*v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RatingPtrToInt16 converts a nullable rating into its storage value.
func RatingPtrToInt16(r *Rating) *int16 {
	if r == nil {
		return nil
	}
	v := r.Int16()
	return &v
}
