package entity

import "time"

// Inventory es el stock actual de un producto en una bodega (una fila por par producto/bodega).
// Quantity puede ser negativa si el negocio admite pedidos pendientes.
type Inventory struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	LastUpdated time.Time
}
