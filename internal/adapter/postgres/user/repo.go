// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var userColumns = []string{
	"u.id", "u.personalisation", "u.contact_email", "u.contact_name",
	"u.timezone", "u.created_at", "u.updated_at",
}

// Repo provides user and Discord link persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
}

// New creates a new user repository.
func New(pool postgres.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

type userRow struct {
	ID              uuid.UUID `db:"id"`
	Personalisation *string   `db:"personalisation"`
	ContactEmail    *string   `db:"contact_email"`
	ContactName     *string   `db:"contact_name"`
	Timezone        *string   `db:"timezone"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether a user with id exists.
func (r *Repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, domain.NewDatabaseError("check user exists", postgres.MapError(err, "user", id))
	}
	return exists, nil
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns...).
		From("users u").
		Where(sq.Eq{"u.id": id})

	return r.getOne(ctx, query, id)
}

// FindByDiscordID returns the user linked to a Discord account.
// Returns domain.ErrNotFound if the account is not linked.
func (r *Repo) FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns...).
		From("users u").
		Join("discord_users d ON d.user_id = u.id").
		Where(sq.Eq{"d.id": discordID})

	return r.getOne(ctx, query, discordID)
}

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, key any) (*domain.User, error) {
	var rw userRow
	if err := postgres.Get(ctx, r.pool, &rw, query); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(err, "user", key)
		}
		return nil, domain.NewDatabaseError("select user", postgres.MapError(err, "user", key))
	}
	u := toDomainUser(rw)
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateDiscordUser inserts the user and its Discord link in one transaction.
// Returns domain.ErrAlreadyExists if the Discord account is already linked.
func (r *Repo) CreateDiscordUser(ctx context.Context, u domain.User, discord domain.DiscordUser) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		_, err := q.Exec(ctx,
			`INSERT INTO users (id, personalisation, contact_email, contact_name, timezone, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			u.ID, u.Personalisation, u.ContactEmail, u.ContactName, u.Timezone, u.CreatedAt, u.UpdatedAt,
		)
		if err != nil {
			return domain.NewDatabaseError("insert user", postgres.MapError(err, "user", u.ID))
		}

		_, err = q.Exec(ctx,
			`INSERT INTO discord_users (id, username, user_id) VALUES ($1, $2, $3)`,
			discord.DiscordID, discord.Username, u.ID,
		)
		if err != nil {
			mapped := postgres.MapError(err, "discord_user", discord.DiscordID)
			if errors.Is(mapped, domain.ErrAlreadyExists) {
				return mapped
			}
			return domain.NewDatabaseError("insert discord user", mapped)
		}
		return nil
	})
}

func toDomainUser(rw userRow) domain.User {
	return domain.User{
		ID:              rw.ID,
		Personalisation: rw.Personalisation,
		ContactEmail:    rw.ContactEmail,
		ContactName:     rw.ContactName,
		Timezone:        rw.Timezone,
		CreatedAt:       rw.CreatedAt,
		UpdatedAt:       rw.UpdatedAt,
	}
}
