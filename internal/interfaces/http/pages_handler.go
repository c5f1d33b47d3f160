package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/session"
)

// PagesHandler rutas de página: landing, login y el shell de la aplicación.
// El contenido real lo renderiza el frontend; aquí solo vive la decisión de
// acceso (a dónde va cada usuario según su sesión).
type PagesHandler struct {
	guard *Guard
}

// NewPagesHandler construye el handler.
func NewPagesHandler(guard *Guard) *PagesHandler {
	return &PagesHandler{guard: guard}
}

// Landing decide la ruta inicial: con sesión va a /app, sin sesión a /login.
// La landing nunca renderiza contenido propio.
func (h *PagesHandler) Landing(c *fiber.Ctx) error {
	if h.guard.CurrentSession(c) != nil {
		return c.Redirect("/app", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Login página de autenticación. Con sesión ya activa redirige a /app para no
// mostrar el formulario a un usuario autenticado.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	if h.guard.CurrentSession(c) != nil {
		return c.Redirect("/app", fiber.StatusSeeOther)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(loginPage)
}

// App shell de la aplicación (ya pasó por RequireSession).
func (h *PagesHandler) App(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(appShell)
}

// Logout borra la cookie de sesión y redirige a /login.
func (h *PagesHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     session.FixedKey,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

const loginPage = `<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Muebles Andina — Ingreso</title></head>
<body><div id="root" data-page="login"></div></body>
</html>`

const appShell = `<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Muebles Andina — ERP</title></head>
<body><div id="root" data-page="app"></div></body>
</html>`
