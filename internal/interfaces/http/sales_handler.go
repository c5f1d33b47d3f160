package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// SalesHandler maneja las peticiones HTTP de ventas (cotizaciones y pedidos).
type SalesHandler struct {
	uc *usecase.SalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// UpdateQuote godoc
// @Summary      Actualizar cotización (parcial)
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateQuoteRequest  true  "Campos a actualizar; id es obligatorio"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/quotes/update [put]
func (h *SalesHandler) UpdateQuote(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.UpdateQuote(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
		}
		metrics.StorageError("quotes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cotización no encontrada"})
	}
	return c.JSON(out)
}

// MarkPOCreated godoc
// @Summary      Marcar pedido con OC a taller emitida
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MarkPOCreatedRequest  true  "ID del pedido"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/custom-orders/mark-po-created [post]
func (h *SalesHandler) MarkPOCreated(c *fiber.Ctx) error {
	var in dto.MarkPOCreatedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.OrderID == "" {
		// Validación en el borde: sin orderId no se toca el almacenamiento.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing orderId"})
	}
	found, err := h.uc.MarkPOCreated(c.UserContext(), in.OrderID)
	if err != nil {
		metrics.StorageError("orders")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "pedido no encontrado"})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// UpdateOrderSalesRep godoc
// @Summary      Reasignar vendedor de un pedido (no implementado)
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Failure      501 {object}  map[string]string
// @Router       /api/sales/orders/{id}/sales-rep [put]
func (h *SalesHandler) UpdateOrderSalesRep(c *fiber.Ctx) error {
	// Contrato incompleto conocido: el endpoint existe pero la reasignación
	// aún no está implementada. Devuelve el identificador recibido.
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"error":   "not implemented",
		"orderId": c.Params("id"),
	})
}

// UpdateQuoteSalesRep godoc
// @Summary      Reasignar vendedor de una cotización (no implementado)
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Failure      501 {object}  map[string]string
// @Router       /api/sales/quotes/{id}/sales-rep [put]
func (h *SalesHandler) UpdateQuoteSalesRep(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"error":   "not implemented",
		"quoteId": c.Params("id"),
	})
}
