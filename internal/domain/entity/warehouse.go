package entity

// Warehouse representa una bodega de una empresa. Entidad externa, solo lectura en este servicio.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
