package http

import (
	"github.com/gofiber/fiber/v2"
)

// SessionHandler endpoints auxiliares de sesión.
type SessionHandler struct{}

// NewSessionHandler construye el handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// DetectIP godoc
// @Summary      IP del cliente vista por el servidor
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/sessions/detect-ip [get]
func (h *SessionHandler) DetectIP(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ip": c.IP()})
}
