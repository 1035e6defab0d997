// Package memory contiene implementaciones en memoria de los puertos de
// persistencia, con la misma semántica que los adaptadores PostgreSQL
// (unicidad del NIT, orden por id descendente, cascada de contactos).
// Se usan en los tests de use cases y handlers.
package memory

import (
	"sort"
	"sync"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.ProviderContactRepository = (*ProviderContactRepo)(nil)

// ProviderContactRepo implementación en memoria de ProviderContactRepository.
type ProviderContactRepo struct {
	mu       sync.RWMutex
	seq      int64
	contacts map[int64]entity.ProviderContact
}

// NewProviderContactRepository construye el repositorio en memoria.
func NewProviderContactRepository() *ProviderContactRepo {
	return &ProviderContactRepo{contacts: make(map[int64]entity.ProviderContact)}
}

// Create agrega un contacto asignando el siguiente id.
func (r *ProviderContactRepo) Create(contact *entity.ProviderContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	contact.ID = r.seq
	r.contacts[contact.ID] = *contact
	return nil
}

// GetByID devuelve el contacto o (nil, nil) si no existe.
func (r *ProviderContactRepo) GetByID(id int64) (*entity.ProviderContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListByProvider devuelve los contactos del proveedor, más recientes primero.
func (r *ProviderContactRepo) ListByProvider(providerID int64) ([]*entity.ProviderContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.ProviderContact
	for _, c := range r.contacts {
		if c.ProviderID == providerID {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

// Update reemplaza el contacto almacenado.
func (r *ProviderContactRepo) Update(contact *entity.ProviderContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[contact.ID]; !ok {
		return domain.ErrNotFound
	}
	r.contacts[contact.ID] = *contact
	return nil
}

// Delete elimina el contacto. Devuelve domain.ErrNotFound si no existe.
func (r *ProviderContactRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

// deleteByProvider borra todos los contactos del proveedor (cascada).
func (r *ProviderContactRepo) deleteByProvider(providerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.contacts {
		if c.ProviderID == providerID {
			delete(r.contacts, id)
		}
	}
}
