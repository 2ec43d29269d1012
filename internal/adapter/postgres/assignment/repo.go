// Package assignment implements rating-scale assignment persistence using PostgreSQL.
// Each assignment kind is stored in its own table with the same shape.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

var columns = []string{"id", "user_id", "value", "rating_index", "created_at", "updated_at"}

var tables = map[domain.AssignmentKind]string{
	domain.AssignmentKindMood:   "mood_assignments",
	domain.AssignmentKindEnergy: "energy_assignments",
	domain.AssignmentKindSleep:  "sleep_assignments",
}

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
}

// New creates a new assignment repository.
func New(pool postgres.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Value       string    `db:"value"`
	RatingIndex int16     `db:"rating_index"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func tableFor(kind domain.AssignmentKind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", domain.NewValidationError("kind", fmt.Sprintf("unknown assignment kind %q", kind))
	}
	return t, nil
}

// FindByIndex returns the user's assignment at index.
// Returns domain.ErrNotFound if no assignment exists for that index.
func (r *Repo) FindByIndex(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID, index domain.Rating) (*domain.Assignment, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "rating_index": index.Int16()})

	var rw row
	if err := postgres.Get(ctx, r.pool, &rw, query); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, postgres.MapError(err, table, index)
		}
		return nil, domain.NewDatabaseError("select "+table, postgres.MapError(err, table, index))
	}

	a, err := toDomain(kind, rw)
	if err != nil {
		return nil, domain.NewDatabaseError("decode "+table, err)
	}
	return &a, nil
}

// Upsert stores a. A row already present for (user, index) keeps its id and
// takes the new value, so concurrent writers converge on one row.
func (r *Repo) Upsert(ctx context.Context, a domain.Assignment) error {
	table, err := tableFor(a.Kind)
	if err != nil {
		return err
	}

	id := uuid.New()
	if a.ID != nil {
		id = *a.ID
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "value", "rating_index").
		Values(id, a.UserID, a.Value, a.Index.Int16()).
		Suffix("ON CONFLICT (user_id, rating_index) DO UPDATE SET value = EXCLUDED.value, updated_at = now()")

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.NewDatabaseError("build upsert "+table, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return domain.NewDatabaseError("upsert "+table, postgres.MapError(err, table, id))
	}
	return nil
}

// ListByUser returns every assignment of kind for the user, ordered by index.
func (r *Repo) ListByUser(ctx context.Context, kind domain.AssignmentKind, userID uuid.UUID) ([]domain.Assignment, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("rating_index ASC")

	var rows []row
	if err := postgres.Select(ctx, r.pool, &rows, query); err != nil {
		return nil, domain.NewDatabaseError("select "+table, postgres.MapError(err, table, userID))
	}

	out := make([]domain.Assignment, len(rows))
	for i, rw := range rows {
		a, err := toDomain(kind, rw)
		if err != nil {
			return nil, domain.NewDatabaseError("decode "+table, err)
		}
		out[i] = a
	}
	return out, nil
}

func toDomain(kind domain.AssignmentKind, rw row) (domain.Assignment, error) {
	index, err := domain.NewRating(rw.RatingIndex)
	if err != nil {
		return domain.Assignment{}, fmt.Errorf("assignment %s: %w", rw.ID, err)
	}
	id := rw.ID
	return domain.Assignment{
		ID:        &id,
		UserID:    rw.UserID,
		Kind:      kind,
		Value:     rw.Value,
		Index:     index,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}, nil
}
