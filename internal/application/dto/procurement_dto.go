package dto

import "time"

// POImageInput un adjunto a registrar sobre una orden de compra.
type POImageInput struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// CreatePOImagesRequest registro de adjuntos de una orden de compra a taller.
type CreatePOImagesRequest struct {
	PurchaseOrderID string         `json:"purchaseOrderId"`
	Images          []POImageInput `json:"images"`
}

// POImageResponse adjunto persistido.
type POImageResponse struct {
	ID              string    `json:"id"`
	PurchaseOrderID string    `json:"purchaseOrderId"`
	ImageURL        string    `json:"imageUrl"`
	Filename        string    `json:"filename"`
	CreatedAt       time.Time `json:"createdAt"`
}
