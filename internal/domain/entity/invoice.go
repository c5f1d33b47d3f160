package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice factura de venta emitida sobre un pedido.
type Invoice struct {
	ID            string
	InvoiceNumber string
	OrderID       string
	CustomerName  string
	CustomerEmail string
	IssueDate     time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Status        string // issued, paid, void
}

// InvoiceItem línea de detalle de una factura.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
