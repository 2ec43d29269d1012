package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Select runs a built query on the querier from ctx and scans every row into dst.
func Select(ctx context.Context, pool Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, QuerierFromCtx(ctx, pool), dst, sql, args...)
}

// Get runs a built query and scans exactly one row into dst.
// It returns pgx.ErrNoRows when nothing matches.
func Get(ctx context.Context, pool Querier, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	err = pgxscan.Get(ctx, QuerierFromCtx(ctx, pool), dst, sql, args...)
	if pgxscan.NotFound(err) {
		return pgx.ErrNoRows
	}
	return err
}
