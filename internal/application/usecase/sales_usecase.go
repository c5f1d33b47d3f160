package usecase

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

// SalesUseCase casos de uso de ventas: cotizaciones y pedidos.
type SalesUseCase struct {
	quotes repository.QuoteRepository
	orders repository.OrderRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(quotes repository.QuoteRepository, orders repository.OrderRepository) *SalesUseCase {
	return &SalesUseCase{quotes: quotes, orders: orders}
}

// UpdateQuote aplica una actualización parcial y devuelve la cotización
// resultante, o nil si no existe.
func (uc *SalesUseCase) UpdateQuote(ctx context.Context, in dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quotes.Update(ctx, in.ID, repository.QuoteUpdate{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Status:        in.Status,
		Total:         in.Total,
		Items:         in.Items,
		ValidUntil:    in.ValidUntil,
	})
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// MarkPOCreated marca que la OC a taller del pedido ya fue emitida.
// Devuelve false si el pedido no existe.
func (uc *SalesUseCase) MarkPOCreated(ctx context.Context, orderID string) (bool, error) {
	if orderID == "" {
		return false, domain.ErrInvalidInput
	}
	return uc.orders.MarkPOCreated(ctx, orderID)
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:            q.ID,
		QuoteNumber:   q.QuoteNumber,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		Status:        q.Status,
		SalesRep:      q.SalesRep,
		Total:         q.Total,
		Items:         q.Items,
		ValidUntil:    q.ValidUntil,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
