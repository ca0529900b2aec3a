package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
	"github.com/jhoicas/stockwatch-api/internal/domain/stock"
)

// Alert resultado del evaluador: la tupla unida más el umbral aplicado y los días estimados.
type Alert struct {
	Inventory         entity.Inventory
	Product           entity.Product
	Warehouse         entity.Warehouse
	Supplier          entity.Supplier
	Threshold         int
	AvgDailyUse       stock.DailyUse
	DaysUntilStockout int64
}

// Evaluator determina qué filas de inventario de una empresa requieren alerta.
type Evaluator struct {
	source repository.LowStockSourceRepository
	ledger *StockLedger
	policy Policy
}

// NewEvaluator construye el evaluador.
func NewEvaluator(source repository.LowStockSourceRepository, ledger *StockLedger, policy Policy) *Evaluator {
	return &Evaluator{source: source, ledger: ledger, policy: policy.normalized()}
}

// Evaluate recorre las filas inventario×proveedor de la empresa y conserva las que están
// bajo el umbral efectivo y fueron actualizadas dentro de la ventana. El orden de salida
// es el de la consulta subyacente.
//
// La cantidad y el historial se leen en consultas distintas: un cambio registrado entre
// ambas lecturas puede reflejarse en una y no en la otra.
func (e *Evaluator) Evaluate(ctx context.Context, companyID int64, now time.Time) ([]Alert, error) {
	rows, err := e.source.ListStockWithSuppliers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listar inventario de la empresa %d: %w", companyID, err)
	}

	// Consumo por producto dentro de esta evaluación: las N filas de un producto con N
	// proveedores comparten el mismo valor.
	useByProduct := make(map[int64]stock.DailyUse)

	alerts := make([]Alert, 0)
	for _, row := range rows {
		threshold := stock.EffectiveThreshold(row.Product.LowStockThreshold, e.policy.DefaultThreshold)
		if !stock.IsBelowThreshold(row.Inventory.Quantity, threshold) {
			continue
		}
		// Stock bajo pero sin actualizar en la ventana no se considera accionable.
		if !stock.IsRecent(row.Inventory.LastUpdated, now, e.policy.LookbackDays) {
			continue
		}

		avg, ok := useByProduct[row.Product.ID]
		if !ok {
			avg, err = e.ledger.AvgDailyUse(ctx, row.Product.ID, now)
			if err != nil {
				return nil, err
			}
			useByProduct[row.Product.ID] = avg
		}

		alerts = append(alerts, Alert{
			Inventory:         row.Inventory,
			Product:           row.Product,
			Warehouse:         row.Warehouse,
			Supplier:          row.Supplier,
			Threshold:         threshold,
			AvgDailyUse:       avg,
			DaysUntilStockout: stock.DaysUntilStockout(row.Inventory.Quantity, avg),
		})
	}
	return alerts, nil
}
