// Package activity implements the activity ledger repository using PostgreSQL.
package activity

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

const table = "activity_records"

var columns = []string{
	"activity_record_id", "user_id", "created_at", "updated_at", "logged_at",
	"activity", "activity_type", "activity_info",
}

const insertSQL = `
INSERT INTO activity_records (
    user_id, created_at, logged_at, activity, activity_type, activity_info
)
SELECT * FROM UNNEST(
    $1::uuid[],
    $2::timestamptz[],
    $3::timestamptz[],
    $4::text[],
    $5::text[],
    $6::jsonb[]
)`

const emptyInfo = "{}"

// Repo provides activity record persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
	now  func() time.Time
}

// New creates a new activity repository.
func New(pool postgres.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx, now: time.Now}
}

type row struct {
	ID           uuid.UUID  `db:"activity_record_id"`
	UserID       uuid.UUID  `db:"user_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	LoggedAt     time.Time  `db:"logged_at"`
	Activity     string     `db:"activity"`
	ActivityType string     `db:"activity_type"`
	ActivityInfo []byte     `db:"activity_info"`
}

// CreateBatch inserts all entries in one statement inside a transaction.
// An entry without activity info is stored with an empty JSON object.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.ActivityEntry) error {
	if len(entries) == 0 {
		return domain.NewValidationError("entries", "cannot create zero entries")
	}

	now := r.now().UTC()
	n := len(entries)
	var (
		userIDs    = make([]uuid.UUID, n)
		createdAt  = make([]time.Time, n)
		loggedAt   = make([]time.Time, n)
		activities = make([]string, n)
		types      = make([]string, n)
		infos      = make([]string, n)
	)
	for i, e := range entries {
		domain.StampTimes(&e.CreatedAt, &e.LoggedAt, now)
		userIDs[i] = e.UserID
		createdAt[i] = e.CreatedAt
		loggedAt[i] = e.LoggedAt
		activities[i] = e.Activity
		types[i] = e.ActivityType.String()
		infos[i] = emptyInfo
		if info := postgres.JSONPayload(e.ActivityInfo); info != nil {
			infos[i] = *info
		}
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
			userIDs, createdAt, loggedAt, activities, types, infos,
		)
		return err
	})
	if err != nil {
		return domain.NewDatabaseError("insert "+table, postgres.MapError(err, table, userIDs[0]))
	}
	return nil
}

// ReadRange returns the user's activity records within the filter bounds,
// newest first.
func (r *Repo) ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.ActivityEntry, error) {
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
		OrderBy("logged_at DESC", "created_at DESC", "activity_record_id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	var rows []row
	if err := postgres.Select(ctx, r.pool, &rows, query); err != nil {
		return nil, domain.NewDatabaseError("select "+table, postgres.MapError(err, table, userID))
	}

	entries := make([]domain.ActivityEntry, len(rows))
	for i, rw := range rows {
		id := rw.ID
		entries[i] = domain.ActivityEntry{
			ID:           &id,
			UserID:       rw.UserID,
			CreatedAt:    rw.CreatedAt,
			UpdatedAt:    rw.UpdatedAt,
			LoggedAt:     rw.LoggedAt,
			Activity:     rw.Activity,
			ActivityType: domain.ActivityType(rw.ActivityType),
			ActivityInfo: rw.ActivityInfo,
		}
	}
	return entries, nil
}
