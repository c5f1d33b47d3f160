package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, order_number, quote_id, customer_name, status, sales_rep, is_custom, po_created, po_created_at, total, items, created_at, updated_at
		FROM sales_orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.QuoteID, &o.CustomerName, &o.Status, &o.SalesRep,
		&o.IsCustom, &o.POCreated, &o.POCreatedAt, &o.Total, &o.Items,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// MarkPOCreated marca en una sola sentencia que la OC a taller ya fue emitida.
func (r *OrderRepo) MarkPOCreated(ctx context.Context, orderID string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE sales_orders SET po_created = true, po_created_at = now(), updated_at = now() WHERE id = $1`,
		orderID,
	)
	if err != nil {
		return false, fmt.Errorf("mark po created: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
