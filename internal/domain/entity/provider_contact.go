package entity

import "time"

// ProviderContact representa una persona de contacto de un proveedor.
// Pertenece a exactamente un Provider y se elimina en cascada con él.
type ProviderContact struct {
	ID           int64
	ProviderID   int64
	ContactName  string
	ContactEmail string
	ContactPhone string
	Position     string // cargo dentro de la empresa proveedora
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
