package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/session"
)

// Locals key bajo la que se cachea la sesión decodificada por petición.
const localSession = "session"

// Guard protege rutas con la sesión firmada. Las páginas sin sesión se
// redirigen a /login con 303 (reemplaza la entrada de historial: el "atrás"
// del navegador no vuelve a la página protegida); las rutas de API devuelven
// 401 con cuerpo JSON.
type Guard struct {
	Secret string
}

// CurrentSession decodifica la sesión de la petición, cacheándola en Locals
// para que los chequeos posteriores de la misma petición no re-verifiquen la
// firma. Cualquier fallo de lectura es "sin sesión" (nil), nunca un error.
func (g *Guard) CurrentSession(c *fiber.Ctx) *session.Session {
	if v := c.Locals(localSession); v != nil {
		s, _ := v.(*session.Session)
		return s
	}
	token := c.Cookies(session.FixedKey)
	if token == "" {
		token = tokenFromBearer(c.Get("Authorization"))
	}
	s := session.Decode(g.Secret, token)
	if s != nil {
		c.Locals(localSession, s)
	}
	return s
}

// RequireSession exige sesión en rutas de página: sin sesión responde un único
// 303 a /login sin cuerpo.
func (g *Guard) RequireSession(c *fiber.Ctx) error {
	if g.CurrentSession(c) == nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequirePermission exige sesión con el permiso dado. Sin sesión redirige a
// /login; con sesión pero sin el permiso responde 403.
func (g *Guard) RequirePermission(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := g.CurrentSession(c)
		if s == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if !s.HasPermission(token) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "permiso insuficiente"})
		}
		return c.Next()
	}
}

func tokenFromBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
