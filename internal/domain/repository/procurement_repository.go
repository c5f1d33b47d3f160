package repository

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// ProcurementRepository persistencia de adjuntos de órdenes de compra.
type ProcurementRepository interface {
	// CreateImages inserta uno o varios adjuntos en una sola sentencia.
	CreateImages(ctx context.Context, images []*entity.PurchaseOrderImage) error
}
