package dto

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// CreateProductRequest body para POST /api/products.
// Los punteros distinguen "ausente" de "cero".
type CreateProductRequest struct {
	Name              string           `json:"name" validate:"required,max=200"`
	SKU               string           `json:"sku" validate:"required,max=100"`
	Price             *decimal.Decimal `json:"price" validate:"required"`
	WarehouseID       *int64           `json:"warehouse_id" validate:"required,gt=0"`
	InitialQuantity   *int64           `json:"initial_quantity" validate:"omitempty,gte=0"`
	LowStockThreshold *int             `json:"low_stock_threshold" validate:"omitempty,gte=0"`
}

// Normalize recorta espacios y normaliza a NFC nombre y SKU, para que SKUs visualmente
// iguales colisionen en la restricción de unicidad.
func (r *CreateProductRequest) Normalize() {
	r.Name = norm.NFC.String(strings.TrimSpace(r.Name))
	r.SKU = norm.NFC.String(strings.TrimSpace(r.SKU))
}

// Quantity devuelve la cantidad inicial (0 si no se envió).
func (r *CreateProductRequest) Quantity() int64 {
	if r.InitialQuantity == nil {
		return 0
	}
	return *r.InitialQuantity
}

// CreateProductResponse salida de la creación de producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}
