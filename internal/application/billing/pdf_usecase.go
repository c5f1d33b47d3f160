package billing

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

// PDFUseCase arma la representación PDF de una factura: carga la factura y
// sus líneas y delega el render al generador.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, generator: generator}
}

// InvoicePDF devuelve los bytes del PDF, o (nil, nil) si la factura no existe.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	items, err := uc.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, items)
}
