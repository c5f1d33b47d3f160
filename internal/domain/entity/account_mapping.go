package entity

import "time"

// AccountMapping vincula una cuenta contable con el tipo de saldo de apertura
// al que tributa en los reportes financieros.
type AccountMapping struct {
	ID            string
	AccountCode   string
	AccountName   string
	BalanceType   string // asset, liability, equity
	MappedAccount string
	CreatedAt     time.Time
}
