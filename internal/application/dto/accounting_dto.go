package dto

import "time"

// AccountMappingResponse mapeo de cuenta para saldos de apertura.
type AccountMappingResponse struct {
	ID            string    `json:"id"`
	AccountCode   string    `json:"accountCode"`
	AccountName   string    `json:"accountName"`
	BalanceType   string    `json:"balanceType"`
	MappedAccount string    `json:"mappedAccount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MigrationResponse resultado de una migración de datos.
type MigrationResponse struct {
	Success  bool  `json:"success"`
	Migrated int64 `json:"migrated"`
}
