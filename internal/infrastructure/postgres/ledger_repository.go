package postgres

import (
	"context"
	"fmt"

	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// Cuenta transitoria usada por la migración de retiros del propietario.
const (
	ownerDrawingsLegacyCode = "owner-drawings"
	ownerEquityCode         = "3200"
	ownerEquityName         = "Patrimonio - Retiros del Propietario"
)

// LedgerRepo implementación de LedgerRepository (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// ReclassifyOwnerDrawings mueve los asientos de la cuenta transitoria a la
// cuenta patrimonial en un único UPDATE; la atomicidad la da la sentencia.
func (r *LedgerRepo) ReclassifyOwnerDrawings(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE ledger_entries
		 SET account_code = $1, account_name = $2, balance_type = 'equity'
		 WHERE account_code = $3`,
		ownerEquityCode, ownerEquityName, ownerDrawingsLegacyCode,
	)
	if err != nil {
		return 0, fmt.Errorf("reclassify owner drawings: %w", err)
	}
	return cmd.RowsAffected(), nil
}
