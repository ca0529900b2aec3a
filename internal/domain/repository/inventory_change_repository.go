package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// InventoryChangeRepository puerto del historial de movimientos (solo inserción).
type InventoryChangeRepository interface {
	Create(ctx context.Context, change *entity.InventoryChange) error
	// SumSince devuelve la suma de change_quantity del producto con change_date >= since,
	// en todas las bodegas. Sin filas devuelve 0.
	SumSince(ctx context.Context, productID int64, since time.Time) (int64, error)
}
