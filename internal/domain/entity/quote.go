package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una cotización.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusAccepted = "accepted"
	QuoteStatusExpired  = "expired"
)

// Quote cotización de venta. Items es el detalle serializado tal como lo
// captura el frontend (producto, cantidad, precio unitario).
type Quote struct {
	ID            string
	QuoteNumber   string
	CustomerName  string
	CustomerEmail string
	Status        string
	SalesRep      string
	Total         decimal.Decimal
	Items         json.RawMessage
	ValidUntil    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
