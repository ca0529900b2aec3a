package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// InventoryRepository define el puerto para consultar/actualizar stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
	// Increment suma delta a la fila (la crea si no existe) y devuelve el estado resultante.
	Increment(ctx context.Context, productID, warehouseID, delta int64, at time.Time) (*entity.Inventory, error)
}
