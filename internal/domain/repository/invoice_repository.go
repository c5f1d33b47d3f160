package repository

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de lectura de facturas.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error)
}
