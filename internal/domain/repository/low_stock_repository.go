package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// StockSupplierRow una fila de inventario de la empresa unida a su producto, bodega y
// uno de los proveedores del producto. Un producto con N proveedores produce N filas.
type StockSupplierRow struct {
	Inventory entity.Inventory
	Product   entity.Product
	Warehouse entity.Warehouse
	Supplier  entity.Supplier
}

// LowStockSourceRepository puerto de lectura para el cálculo de alertas de stock bajo.
type LowStockSourceRepository interface {
	// ListStockWithSuppliers devuelve las filas de inventario de las bodegas de la empresa
	// cuyo producto tiene al menos un proveedor. Empresa sin bodegas = lista vacía.
	ListStockWithSuppliers(ctx context.Context, companyID int64) ([]StockSupplierRow, error)
}
