package entity

// Supplier proveedor de productos. Relación muchos a muchos con Product (product_suppliers).
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}
