package dto

import "time"

// RegisterChangeRequest body para POST /api/inventory/changes.
// ChangeQuantity positivo = entrada, negativo = consumo.
type RegisterChangeRequest struct {
	ProductID      int64  `json:"product_id" validate:"required,gt=0"`
	WarehouseID    int64  `json:"warehouse_id" validate:"required,gt=0"`
	ChangeQuantity int64  `json:"change_quantity" validate:"ne=0"`
	Reason         string `json:"reason" validate:"max=200"`
}

// InventoryResponse estado del inventario tras registrar un cambio.
type InventoryResponse struct {
	ProductID     int64     `json:"product_id"`
	WarehouseID   int64     `json:"warehouse_id"`
	Quantity      int64     `json:"quantity"`
	LastUpdated   time.Time `json:"last_updated"`
	TransactionID string    `json:"transaction_id"`
}
