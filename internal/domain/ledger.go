package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FoodEntry is one logged meal or snack. Nutrient fields are optional and
// count as missing in aggregates when nil.
type FoodEntry struct {
	ID             *uuid.UUID
	UserID         uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	LoggedAt       time.Time
	Description    string
	Calories       *float64
	Carbs          *float64
	Protein        *float64
	Fats           *float64
	Micronutrients json.RawMessage
}

// MoodEntry is one self-assessment of mood, energy and sleep.
type MoodEntry struct {
	ID        *uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	LoggedAt  time.Time
	Mood      *Rating
	Energy    *Rating
	Sleep     *Rating
	Notes     *string
}

// ActivityEntry is one logged physical activity.
type ActivityEntry struct {
	ID           *uuid.UUID
	UserID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LoggedAt     time.Time
	Activity     string
	ActivityType ActivityType
	ActivityInfo json.RawMessage
}

// StampTimes fills the creation and logging times left zero by the caller.
func StampTimes(createdAt, loggedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	if loggedAt.IsZero() {
		*loggedAt = now
	}
}
