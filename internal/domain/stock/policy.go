// Package stock contiene las reglas de dominio de alertas de stock bajo:
// umbral efectivo, ventana de consulta y estimación de días hasta el quiebre.
package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultLowStockThreshold se aplica cuando el producto no define umbral propio.
	// Pendiente de confirmación con producto: decide qué productos alertan.
	DefaultLowStockThreshold = 20

	// LookbackDays ventana usada tanto para el filtro de recencia como para el consumo promedio.
	LookbackDays = 30
)

// MinAvgDailyUse piso del consumo diario cuando no hay historial en la ventana.
// Es una política de respaldo, no un dato: con consumo 1 los días restantes igualan al stock actual.
var MinAvgDailyUse = DailyUse{units: 1, days: 1}

// DailyUse consumo diario promedio como fracción exacta unidades/días.
// El valor cero no es válido; se construye con AvgDailyUse.
type DailyUse struct {
	units int64
	days  int64
}

// Decimal devuelve el consumo diario para mostrar (puede estar redondeado).
func (u DailyUse) Decimal() decimal.Decimal {
	if u.days == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(u.units).Div(decimal.NewFromInt(u.days))
}

// IsPositive indica si el consumo es mayor que cero.
func (u DailyUse) IsPositive() bool {
	return u.units > 0 && u.days > 0
}

func (u DailyUse) String() string {
	return u.Decimal().String()
}

// WindowStart devuelve el inicio de la ventana de días que termina en now.
func WindowStart(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// IsRecent indica si lastUpdated cae dentro de la ventana (límite inclusivo).
func IsRecent(lastUpdated, now time.Time, days int) bool {
	return !lastUpdated.Before(WindowStart(now, days))
}

// EffectiveThreshold devuelve el umbral del producto, o def si no está definido.
// Un umbral en cero se considera no definido.
func EffectiveThreshold(threshold *int, def int) int {
	if threshold == nil || *threshold == 0 {
		return def
	}
	return *threshold
}

// IsBelowThreshold indica si la cantidad está estrictamente por debajo del umbral.
func IsBelowThreshold(quantity int64, threshold int) bool {
	return quantity < int64(threshold)
}

// AvgDailyUse convierte la suma neta de cambios en la ventana en consumo diario.
// AvgDailyUse = |suma| / días; si la suma es cero se usa MinAvgDailyUse.
func AvgDailyUse(netChange int64, days int) DailyUse {
	if netChange == 0 || days <= 0 {
		return MinAvgDailyUse
	}
	if netChange < 0 {
		netChange = -netChange
	}
	return DailyUse{units: netChange, days: int64(days)}
}

// DaysUntilStockout = floor(cantidad / consumoDiario), nunca negativo.
// Se calcula como floor(cantidad * días / unidades) en enteros, sin redondeo intermedio.
func DaysUntilStockout(quantity int64, use DailyUse) int64 {
	if !use.IsPositive() || quantity <= 0 {
		return 0
	}
	return quantity * use.days / use.units
}
