// Package mood implements the mood ledger repository using PostgreSQL.
package mood

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

const table = "mood_records"

var columns = []string{
	"mood_record_id", "user_id", "created_at", "updated_at", "logged_at",
	"mood", "energy", "sleep", "notes",
}

const insertSQL = `
INSERT INTO mood_records (
    user_id, created_at, logged_at, mood, energy, sleep, notes
)
SELECT * FROM UNNEST(
    $1::uuid[],
    $2::timestamptz[],
    $3::timestamptz[],
    $4::smallint[],
    $5::smallint[],
    $6::smallint[],
    $7::text[]
)`

// Repo provides mood record persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
	now  func() time.Time
}

// New creates a new mood repository.
func New(pool postgres.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx, now: time.Now}
}

type row struct {
	ID        uuid.UUID  `db:"mood_record_id"`
	UserID    uuid.UUID  `db:"user_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	LoggedAt  time.Time  `db:"logged_at"`
	Mood      *int16     `db:"mood"`
	Energy    *int16     `db:"energy"`
	Sleep     *int16     `db:"sleep"`
	Notes     *string    `db:"notes"`
}

// CreateBatch inserts all entries in one statement inside a transaction.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.MoodEntry) error {
	if len(entries) == 0 {
		return domain.NewValidationError("entries", "cannot create zero entries")
	}

	now := r.now().UTC()
	n := len(entries)
	var (
		userIDs   = make([]uuid.UUID, n)
		createdAt = make([]time.Time, n)
		loggedAt  = make([]time.Time, n)
		moods     = make([]*int16, n)
		energies  = make([]*int16, n)
		sleeps    = make([]*int16, n)
		notes     = make([]*string, n)
	)
	for i, e := range entries {
		domain.StampTimes(&e.CreatedAt, &e.LoggedAt, now)
		userIDs[i] = e.UserID
		createdAt[i] = e.CreatedAt
		loggedAt[i] = e.LoggedAt
		moods[i] = domain.RatingPtrToInt16(e.Mood)
		energies[i] = domain.RatingPtrToInt16(e.Energy)
		sleeps[i] = domain.RatingPtrToInt16(e.Sleep)
		notes[i] = e.Notes
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
			userIDs, createdAt, loggedAt, moods, energies, sleeps, notes,
		)
		return err
	})
	if err != nil {
		return domain.NewDatabaseError("insert "+table, postgres.MapError(err, table, userIDs[0]))
	}
	return nil
}

// ReadRange returns the user's mood records within the filter bounds,
// newest first.
func (r *Repo) ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.MoodEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID})
	if f.Before != nil {
		query = query.Where(sq.LtOrEq{"logged_at": *f.Before})
	}
	if f.After != nil {
		query = query.Where(sq.GtOrEq{"logged_at": *f.After})
	}
	query = query.
		OrderBy("logged_at DESC", "created_at DESC", "mood_record_id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	var rows []row
	if err := postgres.Select(ctx, r.pool, &rows, query); err != nil {
		return nil, domain.NewDatabaseError("select "+table, postgres.MapError(err, table, userID))
	}

	entries := make([]domain.MoodEntry, len(rows))
	for i, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, domain.NewDatabaseError("decode "+table, fmt.Errorf("record %s: %w", rw.ID, err))
		}
		entries[i] = e
	}
	return entries, nil
}

func toDomain(rw row) (domain.MoodEntry, error) {
	mood, err := domain.RatingPtrFromInt16(rw.Mood)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("mood: %w", err)
	}
	energy, err := domain.RatingPtrFromInt16(rw.Energy)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("energy: %w", err)
	}
	sleep, err := domain.RatingPtrFromInt16(rw.Sleep)
	if err != nil {
		return domain.MoodEntry{}, fmt.Errorf("sleep: %w", err)
	}

	id := rw.ID
	return domain.MoodEntry{
		ID:        &id,
		UserID:    rw.UserID,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
		LoggedAt:  rw.LoggedAt,
		Mood:      mood,
		Energy:    energy,
		Sleep:     sleep,
		Notes:     rw.Notes,
	}, nil
}
