package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateProductRequest actualización parcial de un producto. Los campos nil
// no se modifican.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Attributes  json.RawMessage  `json:"attributes"`
}

// IsEmpty indica si la petición no trae ningún campo a modificar.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Category == nil &&
		r.Price == nil && len(r.Attributes) == 0
}

// CreateCustomProductRequest alta de un producto a medida. El SKU se genera
// a partir del nombre.
type CreateCustomProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Attributes  json.RawMessage `json:"attributes"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	IsCustom    bool            `json:"isCustom"`
	Attributes  json.RawMessage `json:"attributes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SKURequest petición de generación de SKU.
type SKURequest struct {
	ProductName string `json:"productName"`
}

// SKUResponse SKU generado.
type SKUResponse struct {
	SKU string `json:"sku"`
}
