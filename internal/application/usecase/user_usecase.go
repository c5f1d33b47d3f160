package usecase

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios (endpoint de debug).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios sin el hash de password.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:          u.ID,
			Email:       u.Email,
			Name:        u.Name,
			Role:        u.Role,
			Permissions: u.Permissions,
			Status:      u.Status,
			CreatedAt:   u.CreatedAt,
		})
	}
	return out, nil
}
