package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.InventoryChangeRepository = (*InventoryChangeRepo)(nil)

// InventoryChangeRepo implementación sobre PostgreSQL (usable con pool o tx).
// Las filas de inventory_changes no se actualizan ni se borran.
type InventoryChangeRepo struct {
	q Querier
}

// NewInventoryChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryChangeRepository(q Querier) *InventoryChangeRepo {
	return &InventoryChangeRepo{q: q}
}

// Create persiste un cambio de inventario y asigna el ID generado.
func (r *InventoryChangeRepo) Create(ctx context.Context, change *entity.InventoryChange) error {
	if change.TransactionID == "" {
		change.TransactionID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_changes (transaction_id, product_id, warehouse_id, change_quantity, reason, change_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		change.TransactionID, change.ProductID, change.WarehouseID,
		change.ChangeQuantity, change.Reason, change.ChangeDate,
	).Scan(&change.ID)
	if err != nil {
		return fmt.Errorf("create inventory change: %w", err)
	}
	return nil
}

// SumSince suma change_quantity del producto desde since, sin filtrar por bodega.
func (r *InventoryChangeRepo) SumSince(ctx context.Context, productID int64, since time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(change_quantity), 0)
		FROM inventory_changes
		WHERE product_id = $1 AND change_date >= $2`
	var sum int64
	if err := r.q.QueryRow(ctx, query, productID, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum inventory changes: %w", err)
	}
	return sum, nil
}
