package billing

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de generación de la representación imprimible
// de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) ([]byte, error)
}
