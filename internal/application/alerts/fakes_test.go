package alerts_test

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var testNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fakeSource struct {
	rows []repository.StockSupplierRow
	err  error
}

func (f *fakeSource) ListStockWithSuppliers(_ context.Context, companyID int64) ([]repository.StockSupplierRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.StockSupplierRow
	for _, r := range f.rows {
		if r.Warehouse.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeChanges struct {
	changes []entity.InventoryChange
	calls   map[int64]int
	err     error
}

func (f *fakeChanges) Create(_ context.Context, c *entity.InventoryChange) error {
	f.changes = append(f.changes, *c)
	return nil
}

func (f *fakeChanges) SumSince(_ context.Context, productID int64, since time.Time) (int64, error) {
	if f.calls == nil {
		f.calls = make(map[int64]int)
	}
	f.calls[productID]++
	if f.err != nil {
		return 0, f.err
	}
	var sum int64
	for _, c := range f.changes {
		if c.ProductID == productID && !c.ChangeDate.Before(since) {
			sum += c.ChangeQuantity
		}
	}
	return sum, nil
}

func intPtr(v int) *int { return &v }

var (
	whMain  = entity.Warehouse{ID: 10, CompanyID: 1, Name: "Bodega Central"}
	whNorth = entity.Warehouse{ID: 11, CompanyID: 1, Name: "Bodega Norte"}
	whOther = entity.Warehouse{ID: 20, CompanyID: 2, Name: "Bodega Ajena"}

	supplierA = entity.Supplier{ID: 100, Name: "Proveedor A", ContactEmail: "a@proveedor.test"}
	supplierB = entity.Supplier{ID: 101, Name: "Proveedor B", ContactEmail: "b@proveedor.test"}
	supplierC = entity.Supplier{ID: 102, Name: "Proveedor C", ContactEmail: "c@proveedor.test"}
)

func product(id int64, threshold *int) entity.Product {
	return entity.Product{ID: id, Name: "Producto", SKU: "SKU", LowStockThreshold: threshold}
}

func row(p entity.Product, wh entity.Warehouse, qty int64, updated time.Time, s entity.Supplier) repository.StockSupplierRow {
	return repository.StockSupplierRow{
		Inventory: entity.Inventory{ProductID: p.ID, WarehouseID: wh.ID, Quantity: qty, LastUpdated: updated},
		Product:   p,
		Warehouse: wh,
		Supplier:  s,
	}
}
