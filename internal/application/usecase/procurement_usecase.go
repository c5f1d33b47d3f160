package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

// ProcurementUseCase casos de uso de compras: adjuntos de órdenes de compra.
type ProcurementUseCase struct {
	repo repository.ProcurementRepository
}

// NewProcurementUseCase construye el caso de uso.
func NewProcurementUseCase(repo repository.ProcurementRepository) *ProcurementUseCase {
	return &ProcurementUseCase{repo: repo}
}

// AddImages registra uno o varios adjuntos de una OC en una sola inserción.
func (uc *ProcurementUseCase) AddImages(ctx context.Context, in dto.CreatePOImagesRequest) ([]dto.POImageResponse, error) {
	if in.PurchaseOrderID == "" || len(in.Images) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	records := make([]*entity.PurchaseOrderImage, 0, len(in.Images))
	for _, img := range in.Images {
		if img.URL == "" {
			return nil, domain.ErrInvalidInput
		}
		records = append(records, &entity.PurchaseOrderImage{
			ID:              uuid.New().String(),
			PurchaseOrderID: in.PurchaseOrderID,
			ImageURL:        img.URL,
			Filename:        img.Filename,
			CreatedAt:       now,
		})
	}
	if err := uc.repo.CreateImages(ctx, records); err != nil {
		return nil, err
	}
	out := make([]dto.POImageResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.POImageResponse{
			ID:              rec.ID,
			PurchaseOrderID: rec.PurchaseOrderID,
			ImageURL:        rec.ImageURL,
			Filename:        rec.Filename,
			CreatedAt:       rec.CreatedAt,
		})
	}
	return out, nil
}
