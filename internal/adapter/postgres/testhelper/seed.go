package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with contact details.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	email := "testuser-" + suffix + "@example.com"
	name := "Test User " + suffix
	tz := "UTC"
	user := domain.User{
		ID:           uuid.New(),
		ContactEmail: &email,
		ContactName:  &name,
		Timezone:     &tz,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, contact_email, contact_name, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.ContactEmail, user.ContactName, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDiscordUser creates a user linked to a random Discord account.
func SeedDiscordUser(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.DiscordUser) {
	t.Helper()

	user := SeedUser(t, pool)
	discord := domain.DiscordUser{
		DiscordID: int64(uuid.New().ID()),
		Username:  "discord-" + uniqueSuffix(),
		UserID:    user.ID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO discord_users (id, username, user_id) VALUES ($1, $2, $3)`,
		discord.DiscordID, discord.Username, discord.UserID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDiscordUser insert discord_user: %v", err)
	}

	return user, discord
}

// CountRows returns the number of rows in table owned by userID.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
