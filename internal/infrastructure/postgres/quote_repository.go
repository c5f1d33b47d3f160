package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `id, quote_number, customer_name, customer_email, status, sales_rep, total, items, valid_until, created_at, updated_at`

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.QuoteNumber, &q.CustomerName, &q.CustomerEmail, &q.Status,
		&q.SalesRep, &q.Total, &q.Items, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// Update aplica una actualización parcial en una sola sentencia y devuelve la
// fila resultante (RETURNING), o nil si la cotización no existe.
func (r *QuoteRepo) Update(ctx context.Context, id string, upd repository.QuoteUpdate) (*entity.Quote, error) {
	var set []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.CustomerName != nil {
		add("customer_name", *upd.CustomerName)
	}
	if upd.CustomerEmail != nil {
		add("customer_email", *upd.CustomerEmail)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Total != nil {
		add("total", *upd.Total)
	}
	if len(upd.Items) > 0 {
		add("items", upd.Items)
	}
	if upd.ValidUntil != nil {
		add("valid_until", *upd.ValidUntil)
	}
	if len(set) == 0 {
		// Sin campos: devolver el estado actual sin escribir.
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE quotes SET %s, updated_at = now() WHERE id = $%d RETURNING `+quoteColumns,
		strings.Join(set, ", "), len(args),
	)
	var q entity.Quote
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&q.ID, &q.QuoteNumber, &q.CustomerName, &q.CustomerEmail, &q.Status,
		&q.SalesRep, &q.Total, &q.Items, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update quote: %w", err)
	}
	return &q, nil
}
