package http_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var errStorage = errors.New("conexión rechazada")

// store implementa todos los puertos en memoria; el TxRunner no aísla cambios.
type store struct {
	mu         sync.Mutex
	products   map[int64]*entity.Product
	warehouses map[int64]*entity.Warehouse
	inventory  map[[2]int64]*entity.Inventory
	changes    []entity.InventoryChange
	rows       []repository.StockSupplierRow
	nextID     int64
	failReads  bool
}

func newStore() *store {
	return &store{
		products:   map[int64]*entity.Product{},
		warehouses: map[int64]*entity.Warehouse{1: {ID: 1, CompanyID: testCompanyID, Name: "Principal"}},
		inventory:  map[[2]int64]*entity.Inventory{},
	}
}

func (s *store) Run(ctx context.Context, fn func(repository.ProductRepository, repository.InventoryRepository, repository.InventoryChangeRepository) error) error {
	return fn(s, s, changeLog{s})
}

func (s *store) Create(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	s.nextID++
	p.ID = s.nextID
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *store) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id], nil
}

func (s *store) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (s *store) inventoryOf(_ context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory[[2]int64{productID, warehouseID}], nil
}

func (s *store) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	return s.inventoryOf(ctx, productID, warehouseID)
}

func (s *store) Increment(_ context.Context, productID, warehouseID, delta int64, at time.Time) (*entity.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]int64{productID, warehouseID}
	inv, ok := s.inventory[key]
	if !ok {
		inv = &entity.Inventory{ProductID: productID, WarehouseID: warehouseID}
		s.inventory[key] = inv
	}
	inv.Quantity += delta
	inv.LastUpdated = at
	out := *inv
	return &out, nil
}

func (s *store) SumSince(_ context.Context, productID int64, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, c := range s.changes {
		if c.ProductID == productID && !c.ChangeDate.Before(since) {
			sum += c.ChangeQuantity
		}
	}
	return sum, nil
}

func (s *store) ListStockWithSuppliers(_ context.Context, companyID int64) ([]repository.StockSupplierRow, error) {
	if s.failReads {
		return nil, errStorage
	}
	var out []repository.StockSupplierRow
	for _, r := range s.rows {
		if r.Warehouse.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

// warehouses adapta store a WarehouseRepository (GetByID choca con el de productos).
type warehouses struct{ s *store }

func (w warehouses) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	return w.s.warehouses[id], nil
}

// changeLog adapta store a InventoryChangeRepository (Create choca con el de productos).
type changeLog struct{ s *store }

func (c changeLog) Create(_ context.Context, ch *entity.InventoryChange) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.nextID++
	ch.ID = c.s.nextID
	c.s.changes = append(c.s.changes, *ch)
	return nil
}

func (c changeLog) SumSince(ctx context.Context, productID int64, since time.Time) (int64, error) {
	return c.s.SumSince(ctx, productID, since)
}
