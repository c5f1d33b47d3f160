// Package session define el registro de sesión del cliente y sus predicados de
// autorización. La sesión viaja como un capability token firmado bajo una
// clave fija; cualquier fallo de lectura o verificación se normaliza a
// "sin sesión", nunca a un error para el llamador.
package session

import (
	pkgjwt "github.com/mueblesandina/erp-api/pkg/jwt"
)

// FixedKey es la clave fija bajo la que el cliente guarda la sesión serializada
// (nombre de la cookie; también se acepta como Bearer token).
const FixedKey = "erp_session"

// Session registro de la identidad autenticada y sus permisos.
// Si está presente es la única fuente de verdad de "quién es el usuario"
// y "qué puede hacer" del lado del cliente.
type Session struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Decode verifica el token de sesión (firma HS256 + expiración) y devuelve el
// registro. Token ausente, malformado, expirado o con firma incorrecta
// devuelve nil: indistinguible de "no hay sesión".
func Decode(secret, token string) *Session {
	if token == "" {
		return nil
	}
	claims, err := pkgjwt.Parse(secret, token)
	if err != nil {
		return nil
	}
	return &Session{
		ID:          claims.Subject,
		Email:       claims.Email,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}
}

// HasPermission indica si la sesión contiene el permiso exacto.
// Sesión nil (no autenticado) nunca tiene permisos.
func (s *Session) HasPermission(token string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == token {
			return true
		}
	}
	return false
}

// HasAnyPermission indica si la sesión contiene al menos uno de los permisos.
// Corta en el primer match; lista vacía devuelve false.
func (s *Session) HasAnyPermission(tokens ...string) bool {
	for _, t := range tokens {
		if s.HasPermission(t) {
			return true
		}
	}
	return false
}
