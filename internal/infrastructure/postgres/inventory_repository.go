package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene el inventario y bloquea la fila para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	inv, err := scanInventory(r.q.QueryRow(ctx, query, productID, warehouseID))
	if err != nil {
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// Increment inserta la fila o suma delta a la cantidad existente (nunca la reemplaza).
func (r *InventoryRepo) Increment(ctx context.Context, productID, warehouseID, delta int64, at time.Time) (*entity.Inventory, error) {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity, last_updated = EXCLUDED.last_updated
		RETURNING product_id, warehouse_id, quantity, last_updated`
	inv, err := scanInventory(r.q.QueryRow(ctx, query, productID, warehouseID, delta, at))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("increment inventory: %w", err)
	}
	return inv, nil
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := row.Scan(&inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.LastUpdated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}
