package repository

import (
	"context"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
)

// AccountingRepository consultas de lectura para contabilidad.
type AccountingRepository interface {
	// ListAccountMappings devuelve los mapeos de cuenta para un tipo de saldo
	// de apertura (asset, liability, equity).
	ListAccountMappings(ctx context.Context, balanceType string) ([]entity.AccountMapping, error)
}
