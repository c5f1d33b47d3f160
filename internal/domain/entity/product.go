package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un mueble del catálogo. Los productos "custom" nacen de
// pedidos a medida y reciben SKU generado (pkg/sku).
type Product struct {
	ID          string
	SKU         string // único en el catálogo
	Name        string
	Description string
	Category    string // sofas, mesas, sillas, almacenamiento, ...
	Price       decimal.Decimal
	Cost        decimal.Decimal
	IsCustom    bool
	Attributes  json.RawMessage // madera, tapizado, dimensiones, acabado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
