package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/application/dto"
	"github.com/mueblesandina/erp-api/internal/application/usecase"
	"github.com/mueblesandina/erp-api/internal/domain"
	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// AccountingHandler maneja las peticiones HTTP contables.
type AccountingHandler struct {
	uc *usecase.AccountingUseCase
}

// NewAccountingHandler construye el handler.
func NewAccountingHandler(uc *usecase.AccountingUseCase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// AccountMapping godoc
// @Summary      Mapeos de cuenta por tipo de saldo de apertura
// @Tags         accounting
// @Produce      json
// @Param        balance_type  query  string  true  "asset | liability | equity"
// @Success      200  {array}   dto.AccountMappingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounting/opening-balances/account-mapping [get]
func (h *AccountingHandler) AccountMapping(c *fiber.Ctx) error {
	balanceType := c.Query("balance_type")
	if balanceType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "balance_type es requerido"})
	}
	out, err := h.uc.AccountMappings(c.UserContext(), balanceType)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "balance_type inválido: asset, liability o equity"})
		}
		metrics.StorageError("account_mappings")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// MigrateOwnerDrawings godoc
// @Summary      Reclasificar asientos de retiros del propietario
// @Tags         accounting
// @Produce      json
// @Success      200  {object}  dto.MigrationResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/migrate/owner-drawings [post]
func (h *AccountingHandler) MigrateOwnerDrawings(c *fiber.Ctx) error {
	migrated, err := h.uc.MigrateOwnerDrawings(c.UserContext())
	if err != nil {
		metrics.StorageError("ledger_entries")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MigrationResponse{Success: true, Migrated: migrated})
}
