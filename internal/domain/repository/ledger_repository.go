package repository

import "context"

// LedgerRepository operaciones sobre el libro mayor.
type LedgerRepository interface {
	// ReclassifyOwnerDrawings reclasifica en una sola sentencia los asientos
	// cargados a la cuenta transitoria de retiros del propietario hacia la
	// cuenta patrimonial definitiva. Devuelve cuántos asientos migró.
	ReclassifyOwnerDrawings(ctx context.Context) (int64, error)
}
