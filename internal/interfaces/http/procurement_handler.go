package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// ProcurementHandler maneja las peticiones HTTP de compras.
type ProcurementHandler struct {
	uc *usecase.ProcurementUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *usecase.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// CreateImages godoc
// @Summary      Registrar adjuntos de una orden de compra a taller
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePOImagesRequest  true  "OC y adjuntos"
// @Success      201   {array}   dto.POImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/procurement/purchase_order_images [post]
func (h *ProcurementHandler) CreateImages(c *fiber.Ctx) error {
	var in dto.CreatePOImagesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.PurchaseOrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "purchaseOrderId es requerido"})
	}
	if len(in.Images) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "images no puede estar vacío"})
	}
	out, err := h.uc.AddImages(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cada adjunto requiere url"})
		}
		metrics.StorageError("purchase_order_images")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
