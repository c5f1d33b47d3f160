package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// DebugHandler endpoints de diagnóstico. Solo se montan fuera de producción.
type DebugHandler struct {
	uc *usecase.UserUseCase
}

// NewDebugHandler construye el handler.
func NewDebugHandler(uc *usecase.UserUseCase) *DebugHandler {
	return &DebugHandler{uc: uc}
}

// Users godoc
// @Summary      Listar usuarios (diagnóstico, sin hash de password)
// @Tags         debug
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/debug/users [get]
func (h *DebugHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		metrics.StorageError("users")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
