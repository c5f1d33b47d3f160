package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleContador = "contador"
)

// User usuario del ERP. Permissions son los tokens de capacidad que viajan
// dentro de la sesión firmada al autenticarse.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	Permissions  []string
	PasswordHash string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
