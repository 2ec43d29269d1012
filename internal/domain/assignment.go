package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment attaches a user-chosen label to one index of a rating scale.
// A user has at most one assignment per (kind, index).
type Assignment struct {
	ID        *uuid.UUID
	UserID    uuid.UUID
	Kind      AssignmentKind
	Value     string
	Index     Rating
	CreatedAt time.Time
	UpdatedAt time.Time
}
