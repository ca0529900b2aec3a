package dto

// SupplierDTO proveedor de contacto para una alerta.
type SupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO una alerta de stock bajo para un producto en una bodega y uno de sus proveedores.
type LowStockAlertDTO struct {
	ProductID         int64       `json:"product_id"`
	ProductName       string      `json:"product_name"`
	SKU               string      `json:"sku"`
	WarehouseID       int64       `json:"warehouse_id"`
	WarehouseName     string      `json:"warehouse_name"`
	CurrentStock      int64       `json:"current_stock"`
	Threshold         int         `json:"threshold"`
	DaysUntilStockout int64       `json:"days_until_stockout"` // >= 0
	Supplier          SupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/{company_id}/alerts/low-stock.
// TotalAlerts siempre es len(Alerts).
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
