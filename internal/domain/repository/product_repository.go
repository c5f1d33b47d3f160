package repository

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// ProductUpdate campos opcionales de una actualización parcial. Los nil no se
// tocan; la implementación debe aplicar el cambio en una sola sentencia UPDATE.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Attributes  json.RawMessage
}

// IsEmpty indica si la actualización no modifica ningún campo.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Category == nil &&
		u.Price == nil && len(u.Attributes) == 0
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// Update aplica una actualización parcial. Devuelve false si el producto no existe.
	Update(ctx context.Context, id string, upd ProductUpdate) (bool, error)
	// Delete elimina por ID. Devuelve false si el producto no existía.
	Delete(ctx context.Context, id string) (bool, error)
}
