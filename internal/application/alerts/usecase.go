package alerts

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// LowStockUseCase consulta las alertas de stock bajo de una empresa.
// Evaluador → agregador de historial → ensamblador. Sin estado compartido entre peticiones.
type LowStockUseCase struct {
	evaluator *Evaluator
	now       func() time.Time
}

// NewLowStockUseCase construye el caso de uso con el reloj del sistema (UTC).
func NewLowStockUseCase(
	source repository.LowStockSourceRepository,
	changes repository.InventoryChangeRepository,
	policy Policy,
) *LowStockUseCase {
	policy = policy.normalized()
	ledger := NewStockLedger(changes, policy.LookbackDays)
	return &LowStockUseCase{
		evaluator: NewEvaluator(source, ledger, policy),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *LowStockUseCase) WithClock(now func() time.Time) *LowStockUseCase {
	uc.now = now
	return uc
}

// GetLowStockAlerts devuelve las alertas de la empresa. Sin coincidencias devuelve lista vacía,
// no error; solo fallas de almacenamiento se propagan.
func (uc *LowStockUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	evaluated, err := uc.evaluator.Evaluate(ctx, companyID, uc.now())
	if err != nil {
		return nil, err
	}
	return Assemble(evaluated), nil
}
