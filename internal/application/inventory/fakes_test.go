package inventory_test

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var testNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type invKey struct{ productID, warehouseID int64 }

// memStore almacenamiento en memoria; memTxRunner trabaja sobre una copia y la publica solo en Commit.
type memStore struct {
	products   map[int64]entity.Product
	warehouses map[int64]entity.Warehouse
	inventory  map[invKey]entity.Inventory
	changes    []entity.InventoryChange
	nextID     int64

	failIncrement error
	failChange    error
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int64]entity.Product{},
		warehouses: map[int64]entity.Warehouse{1: {ID: 1, CompanyID: 7, Name: "Bodega Central"}},
		inventory:  map[invKey]entity.Inventory{},
		nextID:     1,
	}
}

func (s *memStore) clone() *memStore {
	c := *s
	c.products = make(map[int64]entity.Product, len(s.products))
	for k, v := range s.products {
		c.products[k] = v
	}
	c.inventory = make(map[invKey]entity.Inventory, len(s.inventory))
	for k, v := range s.inventory {
		c.inventory[k] = v
	}
	c.changes = append([]entity.InventoryChange(nil), s.changes...)
	return &c
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.s.nextID
	r.s.nextID++
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) get(_ context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	inv, ok := r.s.inventory[invKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *memInventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	return r.get(ctx, productID, warehouseID)
}

func (r *memInventoryRepo) Increment(_ context.Context, productID, warehouseID, delta int64, at time.Time) (*entity.Inventory, error) {
	if r.s.failIncrement != nil {
		return nil, r.s.failIncrement
	}
	k := invKey{productID, warehouseID}
	inv := r.s.inventory[k]
	inv.ProductID, inv.WarehouseID = productID, warehouseID
	inv.Quantity += delta
	inv.LastUpdated = at
	r.s.inventory[k] = inv
	return &inv, nil
}

type memChangeRepo struct{ s *memStore }

func (r *memChangeRepo) Create(_ context.Context, c *entity.InventoryChange) error {
	if r.s.failChange != nil {
		return r.s.failChange
	}
	c.ID = int64(len(r.s.changes) + 1)
	r.s.changes = append(r.s.changes, *c)
	return nil
}

func (r *memChangeRepo) SumSince(_ context.Context, productID int64, since time.Time) (int64, error) {
	var sum int64
	for _, c := range r.s.changes {
		if c.ProductID == productID && !c.ChangeDate.Before(since) {
			sum += c.ChangeQuantity
		}
	}
	return sum, nil
}

type memTxRunner struct {
	store     *memStore
	commits   int
	rollbacks int
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	changeRepo repository.InventoryChangeRepository,
) error) error {
	tx := r.store.clone()
	if err := fn(&memProductRepo{tx}, &memInventoryRepo{tx}, &memChangeRepo{tx}); err != nil {
		r.rollbacks++
		return err
	}
	*r.store = *tx
	r.commits++
	return nil
}
