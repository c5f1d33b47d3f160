package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/pkg/sku"
)

// SKUHandler generación de SKU a partir del nombre de producto.
type SKUHandler struct{}

// NewSKUHandler construye el handler.
func NewSKUHandler() *SKUHandler {
	return &SKUHandler{}
}

// Generate godoc
// @Summary      Generar SKU desde un nombre de producto
// @Tags         sku
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SKURequest  true  "Nombre del producto"
// @Success      200   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sku [post]
func (h *SKUHandler) Generate(c *fiber.Ctx) error {
	var in dto.SKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "productName es requerido"})
	}
	code, err := sku.Generate(in.ProductName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre de producto inválido"})
	}
	return c.JSON(dto.SKUResponse{SKU: code})
}
