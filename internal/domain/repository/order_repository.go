package repository

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// MarkPOCreated marca que la orden de compra a taller ya fue emitida.
	// Devuelve false si el pedido no existe.
	MarkPOCreated(ctx context.Context, orderID string) (bool, error)
}
