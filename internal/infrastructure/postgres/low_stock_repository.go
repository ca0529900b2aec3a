package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.LowStockSourceRepository = (*LowStockRepo)(nil)

// LowStockRepo consulta de lectura que une inventario, producto, bodega y proveedores.
type LowStockRepo struct {
	q Querier
}

// NewLowStockRepository construye el adaptador.
func NewLowStockRepository(q Querier) *LowStockRepo {
	return &LowStockRepo{q: q}
}

// ListStockWithSuppliers devuelve una fila por (inventario, proveedor) de las bodegas de la empresa.
// El INNER JOIN con product_suppliers excluye los productos sin proveedor.
// Umbral y recencia se evalúan en la capa de aplicación.
func (r *LowStockRepo) ListStockWithSuppliers(ctx context.Context, companyID int64) ([]repository.StockSupplierRow, error) {
	query := `
		SELECT
			i.product_id, i.warehouse_id, i.quantity, i.last_updated,
			p.id, p.name, p.sku, p.price, p.low_stock_threshold, p.created_at, p.updated_at,
			w.id, w.company_id, w.name,
			s.id, s.name, s.contact_email
		FROM inventory i
		JOIN products p           ON p.id = i.product_id
		JOIN warehouses w         ON w.id = i.warehouse_id
		JOIN product_suppliers ps ON ps.product_id = p.id
		JOIN suppliers s          ON s.id = ps.supplier_id
		WHERE w.company_id = $1
		ORDER BY i.warehouse_id, i.product_id, s.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock with suppliers: %w", err)
	}
	defer rows.Close()

	var list []repository.StockSupplierRow
	for rows.Next() {
		var row repository.StockSupplierRow
		if err := rows.Scan(
			&row.Inventory.ProductID, &row.Inventory.WarehouseID, &row.Inventory.Quantity, &row.Inventory.LastUpdated,
			&row.Product.ID, &row.Product.Name, &row.Product.SKU, &row.Product.Price,
			&row.Product.LowStockThreshold, &row.Product.CreatedAt, &row.Product.UpdatedAt,
			&row.Warehouse.ID, &row.Warehouse.CompanyID, &row.Warehouse.Name,
			&row.Supplier.ID, &row.Supplier.Name, &row.Supplier.ContactEmail,
		); err != nil {
			return nil, fmt.Errorf("scan stock supplier row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
