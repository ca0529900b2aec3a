package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// WarehouseRepository puerto de lectura de bodegas (las bodegas se administran fuera de este servicio).
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
}
