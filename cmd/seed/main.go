// seed crea el usuario administrador inicial y emite un token de sesión para
// pruebas locales.
//
// Uso: go run ./cmd/seed <email> <password>
// Requiere SUPABASE_DB_URL, SUPABASE_SERVICE_KEY y SESSION_SECRET en el entorno.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/infrastructure/postgres"
	"github.com/mueblesandina/erp-api/pkg/config"
	"github.com/mueblesandina/erp-api/pkg/jwt"
)

// Permisos completos del rol admin.
var adminPermissions = []string{
	"accounting.view",
	"sales.view",
	"procurement.view",
	"products.manage",
	"users.manage",
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: seed <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	provider, err := postgres.NewHandleProvider(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preparar handle: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepository(postgres.NewLazyQuerier(provider))

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}

	var userID string
	if existing != nil {
		userID = existing.ID
		fmt.Printf("usuario %s ya existe, no se modifica\n", email)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			Permissions:  adminPermissions,
			PasswordHash: string(hash),
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
			os.Exit(1)
		}
		userID = user.ID
		fmt.Printf("usuario admin creado: %s\n", email)
	}

	token, err := jwt.Generate(cfg.Session.Secret, userID, email, entity.RoleAdmin,
		adminPermissions, cfg.Session.Issuer, cfg.Session.ExpMinutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emitir token de sesión: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("token de sesión (cookie erp_session):\n%s\n", token)
}
