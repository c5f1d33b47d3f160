package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry asiento del libro mayor. EntryType es "debit" o "credit";
// BalanceType clasifica el asiento para los reportes de saldos de apertura.
type LedgerEntry struct {
	ID          string
	AccountCode string
	AccountName string
	EntryType   string
	Amount      decimal.Decimal
	BalanceType string
	Description string
	EntryDate   time.Time
	CreatedAt   time.Time
}
