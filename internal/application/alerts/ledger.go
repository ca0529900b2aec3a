package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/domain/stock"
)

// StockLedger calcula el consumo diario reciente de un producto a partir del historial
// de movimientos. Solo lectura.
type StockLedger struct {
	changes    repository.InventoryChangeRepository
	windowDays int
}

// NewStockLedger construye el agregador con la ventana de días indicada.
func NewStockLedger(changes repository.InventoryChangeRepository, windowDays int) *StockLedger {
	if windowDays <= 0 {
		windowDays = stock.LookbackDays
	}
	return &StockLedger{changes: changes, windowDays: windowDays}
}

// AvgDailyUse suma los cambios del producto con fecha >= now - ventana (todas las bodegas)
// y devuelve |suma| / días, o el piso de 1 si la suma es cero. Nunca devuelve cero.
func (l *StockLedger) AvgDailyUse(ctx context.Context, productID int64, now time.Time) (stock.DailyUse, error) {
	sum, err := l.changes.SumSince(ctx, productID, stock.WindowStart(now, l.windowDays))
	if err != nil {
		return stock.DailyUse{}, fmt.Errorf("sumar cambios de inventario del producto %d: %w", productID, err)
	}
	return stock.AvgDailyUse(sum, l.windowDays), nil
}
