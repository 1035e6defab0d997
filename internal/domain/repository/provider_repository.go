package repository

import "github.com/tu-usuario/proveedores-api/internal/domain/entity"

// ProviderFilter filtros del listado de proveedores. Search hace match por
// substring case-insensitive sobre name, nit, email y phone (OR). Status,
// si no está vacío, filtra por igualdad exacta.
type ProviderFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// ProviderRepository define el puerto de persistencia para Provider.
// Los Get* devuelven (nil, nil) cuando el registro no existe. Create y
// Update devuelven domain.ErrDuplicate ante una violación de unicidad del
// NIT; Delete devuelve domain.ErrNotFound si el id no existe.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id int64) (*entity.Provider, error)
	GetByNIT(nit string) (*entity.Provider, error)
	List(filter ProviderFilter) ([]*entity.Provider, int, error)
	Update(provider *entity.Provider) error
	Delete(id int64) error
}
