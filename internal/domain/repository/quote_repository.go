package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// QuoteUpdate campos opcionales de una actualización parcial de cotización.
type QuoteUpdate struct {
	CustomerName  *string
	CustomerEmail *string
	Status        *string
	Total         *decimal.Decimal
	Items         json.RawMessage
	ValidUntil    *time.Time
}

// IsEmpty indica si la actualización no modifica ningún campo.
func (u QuoteUpdate) IsEmpty() bool {
	return u.CustomerName == nil && u.CustomerEmail == nil && u.Status == nil &&
		u.Total == nil && len(u.Items) == 0 && u.ValidUntil == nil
}

// QuoteRepository define el puerto de persistencia para Quote.
type QuoteRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	// Update aplica una actualización parcial en una sola sentencia y devuelve
	// la cotización resultante, o nil si no existe.
	Update(ctx context.Context, id string, upd QuoteUpdate) (*entity.Quote, error)
}
