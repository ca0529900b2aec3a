package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// RegisterChangeUseCase registra un movimiento de stock: ajusta la cantidad de la fila de inventario
// (con bloqueo SELECT FOR UPDATE) y agrega el evento inmutable al historial, en la misma transacción.
type RegisterChangeUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	now           func() time.Time
}

// NewRegisterChangeUseCase construye el caso de uso.
func NewRegisterChangeUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterChangeUseCase {
	return &RegisterChangeUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// RegisterChange aplica el delta. La cantidad resultante puede ser negativa (pedidos pendientes).
func (uc *RegisterChangeUseCase) RegisterChange(ctx context.Context, in dto.RegisterChangeRequest) (*dto.InventoryResponse, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	txID := uuid.New().String()

	var result *entity.Inventory
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		changeRepo repository.InventoryChangeRepository,
	) error {
		// Bloquea la fila para serializar cambios concurrentes sobre el mismo par producto/bodega
		if _, err := inventoryRepo.GetForUpdate(ctx, product.ID, warehouse.ID); err != nil {
			return err
		}
		inv, err := inventoryRepo.Increment(ctx, product.ID, warehouse.ID, in.ChangeQuantity, now)
		if err != nil {
			return err
		}
		result = inv
		return changeRepo.Create(ctx, &entity.InventoryChange{
			TransactionID:  txID,
			ProductID:      product.ID,
			WarehouseID:    warehouse.ID,
			ChangeQuantity: in.ChangeQuantity,
			Reason:         in.Reason,
			ChangeDate:     now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.InventoryResponse{
		ProductID:     result.ProductID,
		WarehouseID:   result.WarehouseID,
		Quantity:      result.Quantity,
		LastUpdated:   result.LastUpdated,
		TransactionID: txID,
	}, nil
}
