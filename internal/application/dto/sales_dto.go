package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateQuoteRequest actualización parcial de una cotización. ID es obligatorio.
type UpdateQuoteRequest struct {
	ID            string           `json:"id"`
	CustomerName  *string          `json:"customerName"`
	CustomerEmail *string          `json:"customerEmail"`
	Status        *string          `json:"status"`
	Total         *decimal.Decimal `json:"total"`
	Items         json.RawMessage  `json:"items"`
	ValidUntil    *time.Time       `json:"validUntil"`
}

// QuoteResponse representación de una cotización en respuestas.
type QuoteResponse struct {
	ID            string          `json:"id"`
	QuoteNumber   string          `json:"quoteNumber"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Status        string          `json:"status"`
	SalesRep      string          `json:"salesRep"`
	Total         decimal.Decimal `json:"total"`
	Items         json.RawMessage `json:"items,omitempty"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// MarkPOCreatedRequest marca que la OC a taller de un pedido ya fue emitida.
type MarkPOCreatedRequest struct {
	OrderID string `json:"orderId"`
}
