package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El stock se maneja por bodega en Inventory.
type Product struct {
	ID                int64
	Name              string
	SKU               string          // único global, no vacío
	Price             decimal.Decimal // precio de venta, no negativo
	LowStockThreshold *int            // nil = umbral por defecto de la política de alertas
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
