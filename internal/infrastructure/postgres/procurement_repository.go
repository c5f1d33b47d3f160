package postgres

import (
	"context"
	"fmt"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

// ProcurementRepo implementación de ProcurementRepository (usable con pool o tx).
type ProcurementRepo struct {
	q Querier
}

// NewProcurementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProcurementRepository(q Querier) *ProcurementRepo {
	return &ProcurementRepo{q: q}
}

// CreateImages inserta uno o varios adjuntos con un único INSERT multi-fila.
func (r *ProcurementRepo) CreateImages(ctx context.Context, images []*entity.PurchaseOrderImage) error {
	if len(images) == 0 {
		return nil
	}
	query := `INSERT INTO purchase_order_images (id, purchase_order_id, image_url, filename, created_at) VALUES `
	var args []any
	for i, img := range images {
		if i > 0 {
			query += ", "
		}
		base := i * 5
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, img.ID, img.PurchaseOrderID, img.ImageURL, img.Filename, img.CreatedAt)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert purchase order images: %w", err)
	}
	return nil
}
