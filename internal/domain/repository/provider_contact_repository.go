package repository

import "github.com/tu-usuario/proveedores-api/internal/domain/entity"

// ProviderContactRepository define el puerto de persistencia para
// ProviderContact. GetByID devuelve (nil, nil) si no existe; Delete
// devuelve domain.ErrNotFound si el id no existe. ListByProvider ordena
// por id descendente (más recientes primero).
type ProviderContactRepository interface {
	Create(contact *entity.ProviderContact) error
	GetByID(id int64) (*entity.ProviderContact, error)
	ListByProvider(providerID int64) ([]*entity.ProviderContact, error)
	Update(contact *entity.ProviderContact) error
	Delete(id int64) error
}
