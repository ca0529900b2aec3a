package alerts

import "github.com/jhoicas/stockwatch-api/internal/domain/stock"

// Policy parámetros de negocio que deciden qué stock alerta.
type Policy struct {
	DefaultThreshold int // umbral cuando el producto no define uno
	LookbackDays     int // ventana de recencia y de consumo promedio
}

// DefaultPolicy reproduce el comportamiento histórico: umbral 20, ventana de 30 días.
func DefaultPolicy() Policy {
	return Policy{
		DefaultThreshold: stock.DefaultLowStockThreshold,
		LookbackDays:     stock.LookbackDays,
	}
}

// normalized rellena con los valores por defecto los campos no configurados.
func (p Policy) normalized() Policy {
	def := DefaultPolicy()
	if p.DefaultThreshold <= 0 {
		p.DefaultThreshold = def.DefaultThreshold
	}
	if p.LookbackDays <= 0 {
		p.LookbackDays = def.LookbackDays
	}
	return p
}
