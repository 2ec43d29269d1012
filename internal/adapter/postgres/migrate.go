package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/yuhuh-backend/migrations"
)

// Migrator applies the embedded goose migrations.
type Migrator struct {
	provider *goose.Provider
	db       *sql.DB
}

// NewMigrator opens a database/sql handle on top of pool and prepares a goose
// provider over the embedded migrations. Close releases the handle.
func NewMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	m, err := newMigrator(db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func newMigrator(db *sql.DB, fsys fs.FS) (*Migrator, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return &Migrator{provider: provider, db: db}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context, log *slog.Logger) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context, log *slog.Logger) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	log.InfoContext(ctx, "migration rolled back",
		slog.Int64("version", r.Source.Version),
		slog.String("file", r.Source.Path),
	)
	return nil
}

// Status logs the state of every known migration.
func (m *Migrator) Status(ctx context.Context, log *slog.Logger) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		log.InfoContext(ctx, "migration status",
			slog.Int64("version", s.Source.Version),
			slog.String("file", s.Source.Path),
			slog.String("state", string(s.State)),
		)
	}
	return nil
}

// Close releases the underlying database/sql handle.
func (m *Migrator) Close() error {
	return m.db.Close()
}
