// Package food implements the food ledger repository using PostgreSQL.
package food

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yuhuh-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

const table = "food_records"

var columns = []string{
	"food_record_id", "user_id", "created_at", "updated_at", "logged_at",
	"description", "calories", "carbs", "protein", "fats", "micronutrients",
}

const insertSQL = `
INSERT INTO food_records (
    user_id, created_at, logged_at, description,
    calories, carbs, protein, fats, micronutrients
)
SELECT * FROM UNNEST(
    $1::uuid[],
    $2::timestamptz[],
    $3::timestamptz[],
    $4::text[],
    $5::double precision[],
    $6::double precision[],
    $7::double precision[],
    $8::double precision[],
    $9::jsonb[]
)`

// Repo provides food record persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
	now  func() time.Time
}

// New creates a new food repository.
func New(pool postgres.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx, now: time.Now}
}

type row struct {
	ID             uuid.UUID  `db:"food_record_id"`
	UserID         uuid.UUID  `db:"user_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
	LoggedAt       time.Time  `db:"logged_at"`
	Description    string     `db:"description"`
	Calories       *float64   `db:"calories"`
	Carbs          *float64   `db:"carbs"`
	Protein        *float64   `db:"protein"`
	Fats           *float64   `db:"fats"`
	Micronutrients []byte     `db:"micronutrients"`
}

// CreateBatch inserts all entries in one statement inside a transaction.
// Either every entry is stored or none is.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.FoodEntry) error {
	if len(entries) == 0 {
		return domain.NewValidationError("entries", "cannot create zero entries")
	}

	now := r.now().UTC()
	n := len(entries)
	var (
		userIDs        = make([]uuid.UUID, n)
		createdAt      = make([]time.Time, n)
		loggedAt       = make([]time.Time, n)
		descriptions   = make([]string, n)
		calories       = make([]*float64, n)
		carbs          = make([]*float64, n)
		protein        = make([]*float64, n)
		fats           = make([]*float64, n)
		micronutrients = make([]*string, n)
	)
	for i, e := range entries {
		domain.StampTimes(&e.CreatedAt, &e.LoggedAt, now)
		userIDs[i] = e.UserID
		createdAt[i] = e.CreatedAt
		loggedAt[i] = e.LoggedAt
		descriptions[i] = e.Description
		calories[i] = e.Calories
		carbs[i] = e.Carbs
		protein[i] = e.Protein
		fats[i] = e.Fats
		micronutrients[i] = postgres.JSONPayload(e.Micronutrients)
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertSQL,
			userIDs, createdAt, loggedAt, descriptions,
			calories, carbs, protein, fats, micronutrients,
		)
		return err
	})
	if err != nil {
		return domain.NewDatabaseError("insert "+table, postgres.MapError(err, table, userIDs[0]))
	}
	return nil
}

// ReadRange returns the user's food records within the filter bounds,
// newest first.
func (r *Repo) ReadRange(ctx context.Context, userID uuid.UUID, f domain.RangeFilter) ([]domain.FoodEntry, error) {
	query := rangeQuery(userID, f)

	var rows []row
	if err := postgres.Select(ctx, r.pool, &rows, query); err != nil {
		return nil, domain.NewDatabaseError("select "+table, postgres.MapError(err, table, userID))
	}

	entries := make([]domain.FoodEntry, len(rows))
	for i, rw := range rows {
		entries[i] = toDomain(rw)
	}
	return entries, nil
}

func rangeQuery(userID uuid.UUID, f domain.RangeFilter) sq.SelectBuilder {
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
	return query.
		OrderBy("logged_at DESC", "created_at DESC", "food_record_id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
}

func toDomain(rw row) domain.FoodEntry {
	id := rw.ID
	return domain.FoodEntry{
		ID:             &id,
		UserID:         rw.UserID,
		CreatedAt:      rw.CreatedAt,
		UpdatedAt:      rw.UpdatedAt,
		LoggedAt:       rw.LoggedAt,
		Description:    rw.Description,
		Calories:       rw.Calories,
		Carbs:          rw.Carbs,
		Protein:        rw.Protein,
		Fats:           rw.Fats,
		Micronutrients: rw.Micronutrients,
	}
}
