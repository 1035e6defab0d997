package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación en memoria de ProviderRepository. Si recibe el
// repositorio de contactos, Delete replica el ON DELETE CASCADE de la FK.
type ProviderRepo struct {
	mu        sync.RWMutex
	seq       int64
	providers map[int64]entity.Provider
	contacts  *ProviderContactRepo
}

// NewProviderRepository construye el repositorio en memoria. contacts puede
// ser nil si el test no ejercita la cascada.
func NewProviderRepository(contacts *ProviderContactRepo) *ProviderRepo {
	return &ProviderRepo{providers: make(map[int64]entity.Provider), contacts: contacts}
}

// Create agrega un proveedor; NIT duplicado devuelve domain.ErrDuplicate
// como lo haría el constraint único.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.providers {
		if p.NIT == provider.NIT {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	provider.ID = r.seq
	r.providers[provider.ID] = *provider
	return nil
}

// GetByID devuelve el proveedor o (nil, nil) si no existe.
func (r *ProviderRepo) GetByID(id int64) (*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByNIT devuelve el proveedor con ese NIT exacto o (nil, nil).
func (r *ProviderRepo) GetByNIT(nit string) (*entity.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.providers {
		if p.NIT == nit {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// List replica la consulta SQL: search por substring case-insensitive en
// name/nit/email/phone, status exacto, orden id descendente, limit/offset.
func (r *ProviderRepo) List(filter repository.ProviderFilter) ([]*entity.Provider, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Provider
	for _, p := range r.providers {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !matchesSearch(&p, filter.Search) {
			continue
		}
		p := p
		matched = append(matched, &p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := len(matched)
	if filter.Offset >= total {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func matchesSearch(p *entity.Provider, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{p.Name, p.NIT, p.Email, p.Phone} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Update reemplaza el proveedor almacenado; NIT duplicado contra otro
// registro devuelve domain.ErrDuplicate.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[provider.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, p := range r.providers {
		if id != provider.ID && p.NIT == provider.NIT {
			return domain.ErrDuplicate
		}
	}
	r.providers[provider.ID] = *provider
	return nil
}

// Delete elimina el proveedor y sus contactos en cascada.
func (r *ProviderRepo) Delete(id int64) error {
	r.mu.Lock()
	if _, ok := r.providers[id]; !ok {
		r.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(r.providers, id)
	r.mu.Unlock()

	if r.contacts != nil {
		r.contacts.deleteByProvider(id)
	}
	return nil
}
