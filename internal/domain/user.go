package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of every ledger record and assignment.
type User struct {
	ID              uuid.UUID
	Personalisation *string
	ContactEmail    *string
	ContactName     *string
	Timezone        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DiscordUser links a Discord account to a User.
type DiscordUser struct {
	DiscordID int64
	Username  string
	UserID    uuid.UUID
}
