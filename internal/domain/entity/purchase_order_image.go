package entity

import "time"

// PurchaseOrderImage foto o plano adjunto a una orden de compra a taller
// (referencias del mueble a fabricar). El binario vive en el storage externo;
// aquí solo se guarda la URL.
type PurchaseOrderImage struct {
	ID              string
	PurchaseOrderID string
	ImageURL        string
	Filename        string
	CreatedAt       time.Time
}
