package usecase

import (
	"context"
	"time"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
	"github.com/mueblesandina/erp-api/internal/infrastructure/cache"
)

// TTL del cache de mapeos de cuenta; el listener de cambios los invalida antes
// si la tabla se modifica.
const accountMappingTTL = 5 * time.Minute

// Tipos de saldo de apertura admitidos.
var validBalanceTypes = map[string]bool{
	"asset":     true,
	"liability": true,
	"equity":    true,
}

// AccountingUseCase casos de uso contables: saldos de apertura y migraciones.
type AccountingUseCase struct {
	repo   repository.AccountingRepository
	ledger repository.LedgerRepository
	cache  *cache.Cache
}

// NewAccountingUseCase construye el caso de uso. cache puede ser nil (deshabilitado).
func NewAccountingUseCase(repo repository.AccountingRepository, ledger repository.LedgerRepository, c *cache.Cache) *AccountingUseCase {
	return &AccountingUseCase{repo: repo, ledger: ledger, cache: c}
}

// AccountMappings devuelve los mapeos de cuenta de un tipo de saldo, con
// lectura read-through sobre el cache.
func (uc *AccountingUseCase) AccountMappings(ctx context.Context, balanceType string) ([]dto.AccountMappingResponse, error) {
	if !validBalanceTypes[balanceType] {
		return nil, domain.ErrInvalidInput
	}

	key := "account-mapping:" + balanceType
	var cached []dto.AccountMappingResponse
	if ok, _ := uc.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	list, err := uc.repo.ListAccountMappings(ctx, balanceType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountMappingResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toAccountMappingResponse(m))
	}
	// Un fallo al escribir el cache no afecta la respuesta.
	_ = uc.cache.SetJSON(ctx, key, out, accountMappingTTL)
	return out, nil
}

// InvalidateAccountMappings purga el cache de mapeos (lo dispara el listener
// de cambios cuando la tabla se modifica).
func (uc *AccountingUseCase) InvalidateAccountMappings(ctx context.Context) {
	_ = uc.cache.Invalidate(ctx, "account-mapping:*")
}

// MigrateOwnerDrawings reclasifica los asientos de retiros del propietario.
// Devuelve cuántos asientos migró.
func (uc *AccountingUseCase) MigrateOwnerDrawings(ctx context.Context) (int64, error) {
	return uc.ledger.ReclassifyOwnerDrawings(ctx)
}

func toAccountMappingResponse(m entity.AccountMapping) dto.AccountMappingResponse {
	return dto.AccountMappingResponse{
		ID:            m.ID,
		AccountCode:   m.AccountCode,
		AccountName:   m.AccountName,
		BalanceType:   m.BalanceType,
		MappedAccount: m.MappedAccount,
		CreatedAt:     m.CreatedAt,
	}
}
