package postgres

import (
	"context"
	"fmt"

	"github.com/mueblesandina/erp-api/internal/domain/entity"
	"github.com/mueblesandina/erp-api/internal/domain/repository"
)

var _ repository.AccountingRepository = (*AccountingRepo)(nil)

// AccountingRepo implementación de AccountingRepository (read-only).
type AccountingRepo struct {
	q Querier
}

// NewAccountingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountingRepository(q Querier) *AccountingRepo {
	return &AccountingRepo{q: q}
}

// ListAccountMappings lista los mapeos de cuenta de un tipo de saldo.
func (r *AccountingRepo) ListAccountMappings(ctx context.Context, balanceType string) ([]entity.AccountMapping, error) {
	query := `
		SELECT id, account_code, account_name, balance_type, mapped_account, created_at
		FROM account_mappings WHERE balance_type = $1 ORDER BY account_code`
	rows, err := r.q.Query(ctx, query, balanceType)
	if err != nil {
		return nil, fmt.Errorf("list account mappings: %w", err)
	}
	defer rows.Close()
	var list []entity.AccountMapping
	for rows.Next() {
		var m entity.AccountMapping
		if err := rows.Scan(&m.ID, &m.AccountCode, &m.AccountName, &m.BalanceType, &m.MappedAccount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account mapping: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
