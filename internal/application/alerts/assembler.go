package alerts

import (
	"github.com/samber/lo"

	"github.com/jhoicas/stockwatch-api/internal/application/dto"
)

// Assemble convierte las alertas evaluadas en la respuesta HTTP. Transformación pura.
func Assemble(alerts []Alert) *dto.LowStockAlertsResponse {
	items := lo.Map(alerts, func(a Alert, _ int) dto.LowStockAlertDTO {
		return toAlertDTO(a)
	})
	return &dto.LowStockAlertsResponse{
		Alerts:      items,
		TotalAlerts: len(items),
	}
}

func toAlertDTO(a Alert) dto.LowStockAlertDTO {
	return dto.LowStockAlertDTO{
		ProductID:         a.Product.ID,
		ProductName:       a.Product.Name,
		SKU:               a.Product.SKU,
		WarehouseID:       a.Warehouse.ID,
		WarehouseName:     a.Warehouse.Name,
		CurrentStock:      a.Inventory.Quantity,
		Threshold:         a.Threshold,
		DaysUntilStockout: a.DaysUntilStockout,
		Supplier: dto.SupplierDTO{
			ID:           a.Supplier.ID,
			Name:         a.Supplier.Name,
			ContactEmail: a.Supplier.ContactEmail,
		},
	}
}
