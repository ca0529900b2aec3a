package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// CreateProductUseCase crea un producto junto con su fila de inventario inicial en una sola transacción.
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	now           func() time.Time
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Create valida la entrada y persiste producto + inventario.
//
// Retorna:
//   - *domain.ValidationError  si falta un campo requerido o un valor es inválido.
//   - domain.ErrNotFound       si la bodega no existe.
//   - domain.ErrDuplicate      si el SKU ya existe.
//   - otro error               falla de almacenamiento (reintentable por el cliente).
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	in.Normalize()
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	}

	warehouse, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now()
	product := &entity.Product{
		Name:              in.Name,
		SKU:               in.SKU,
		Price:             *in.Price,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.InventoryChangeRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		// Si ya existe la fila (producto, bodega) se incrementa, no se reemplaza.
		_, err := inventoryRepo.Increment(ctx, product.ID, warehouse.ID, in.Quantity(), now)
		return err
	})
	if err != nil {
		// Otra petición pudo insertar el mismo SKU después de la verificación previa.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	return &dto.CreateProductResponse{Message: "Product created", ProductID: product.ID}, nil
}
