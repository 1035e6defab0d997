package entity

import "time"

// Estados válidos para Provider.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Provider representa un proveedor de la empresa. El NIT es único
// (constraint de base de datos) y el status siempre es active o inactive.
type Provider struct {
	ID        int64
	Name      string
	NIT       string // identificador tributario, único
	Email     string
	Phone     string
	Address   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
