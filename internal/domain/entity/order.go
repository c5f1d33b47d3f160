package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Order pedido de venta. Los pedidos custom (muebles a medida) disparan una
// orden de compra a taller; POCreated marca que esa OC ya fue emitida.
type Order struct {
	ID           string
	OrderNumber  string
	QuoteID      string
	CustomerName string
	Status       string
	SalesRep     string
	IsCustom     bool
	POCreated    bool
	POCreatedAt  *time.Time
	Total        decimal.Decimal
	Items        json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
