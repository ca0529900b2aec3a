package entity

import "time"

// InventoryChange es un evento inmutable del historial de movimientos de stock de un producto.
// ChangeQuantity positivo = entrada, negativo = consumo.
type InventoryChange struct {
	ID             int64
	TransactionID  string
	ProductID      int64
	WarehouseID    int64
	ChangeQuantity int64
	Reason         string
	ChangeDate     time.Time
}
