package dto

import "time"

// CreateContactRequest entrada para crear un contacto anidado bajo un proveedor.
type CreateContactRequest struct {
	ContactName  string `json:"contact_name" validate:"required,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=50"`
	Position     string `json:"position" validate:"omitempty,max=255"`
}

// UpdateContactRequest entrada para actualizar un contacto. Campos puntero:
// los ausentes en el body conservan su valor actual (reemplazo parcial o total).
type UpdateContactRequest struct {
	ContactName  *string `json:"contact_name" validate:"omitempty,max=255"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" validate:"omitempty,max=50"`
	Position     *string `json:"position" validate:"omitempty,max=255"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID           int64     `json:"id"`
	ProviderID   int64     `json:"provider_id"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
