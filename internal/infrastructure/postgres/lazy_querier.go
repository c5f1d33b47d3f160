package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// LazyQuerier implementa Querier resolviendo el handle en cada llamada: el
// pool se construye recién cuando llega la primera operación real, no al
// cablear los repositorios en el arranque.
type LazyQuerier struct {
	provider *HandleProvider
}

// NewLazyQuerier construye el adaptador.
func NewLazyQuerier(provider *HandleProvider) *LazyQuerier {
	return &LazyQuerier{provider: provider}
}

func (q *LazyQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool, err := q.provider.Get(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

func (q *LazyQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := q.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

func (q *LazyQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool, err := q.provider.Get(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// errRow es un pgx.Row que siempre falla; difiere el error del handle a Scan.
type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
