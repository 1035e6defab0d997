package dto

import "time"

// ProviderRequest entrada para crear o actualizar un proveedor (reemplazo
// completo de los campos editables). El use case normaliza antes de validar:
// recorta espacios y traduce los sinónimos de status (Activo -> active).
type ProviderRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	NIT     string `json:"nit" validate:"required,max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Status  string `json:"status" validate:"required,oneof=active inactive"`
}

// ProviderResponse salida de un proveedor. Contacts solo se adjunta en el
// detalle (GET /providers/:id).
type ProviderResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	NIT       string            `json:"nit"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Contacts  []ContactResponse `json:"contacts,omitempty"`
}

// ProviderListResponse página del listado de proveedores.
type ProviderListResponse struct {
	Items       []ProviderResponse `json:"items"`
	CurrentPage int                `json:"current_page"`
	PerPage     int                `json:"per_page"`
	LastPage    int                `json:"last_page"`
	Total       int                `json:"total"`
}
