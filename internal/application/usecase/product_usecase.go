package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
	"github.com/mueblesandina/erp-api/pkg/sku"
)

// ProductUseCase casos de uso del catálogo de muebles.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Update aplica una actualización parcial. Devuelve false si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (bool, error) {
	if in.IsEmpty() {
		return false, domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, id, repository.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Attributes:  in.Attributes,
	})
}

// Delete elimina un producto. Devuelve false si no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// CreateCustom da de alta un producto a medida con SKU generado desde el nombre.
func (uc *ProductUseCase) CreateCustom(ctx context.Context, in dto.CreateCustomProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := sku.Generate(in.Name)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         code,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Cost:        decimal.Zero,
		IsCustom:    true,
		Attributes:  in.Attributes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		IsCustom:    p.IsCustom,
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
