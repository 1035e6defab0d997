package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

const msgNITDuplicado = "El NIT ya está registrado."

// ProviderUseCase casos de uso CRUD para proveedores: listado paginado con
// búsqueda y filtro por estado, detalle con contactos, creación,
// actualización (reemplazo completo) y borrado con cascada de contactos.
type ProviderUseCase struct {
	repo        repository.ProviderRepository
	contactRepo repository.ProviderContactRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository, contactRepo repository.ProviderContactRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo, contactRepo: contactRepo}
}

// List lista proveedores paginados, ordenados por id descendente.
// search busca por substring case-insensitive en name, nit, email y phone;
// status filtra por igualdad exacta.
func (uc *ProviderUseCase) List(q dto.ListProvidersQuery) (*dto.ProviderListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(repository.ProviderFilter{
		Search: strings.TrimSpace(q.Search),
		Status: q.Status,
		Limit:  q.PerPage,
		Offset: (q.Page - 1) * q.PerPage,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProviderResponse(p, nil))
	}
	lastPage := (total + q.PerPage - 1) / q.PerPage
	if lastPage < 1 {
		lastPage = 1
	}
	return &dto.ProviderListResponse{
		Items:       items,
		CurrentPage: q.Page,
		PerPage:     q.PerPage,
		LastPage:    lastPage,
		Total:       total,
	}, nil
}

// Create crea un proveedor. El NIT debe ser único: se pre-verifica y,
// ante la carrera check-then-write, el constraint de la DB devuelve el
// mismo error de validación sobre el campo nit.
func (uc *ProviderUseCase) Create(in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	normalizeProvider(&in)
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validation.New("nit", msgNITDuplicado)
	}
	now := time.Now()
	provider := &entity.Provider{
		Name:      in.Name,
		NIT:       in.NIT,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(provider); err != nil {
		if err == domain.ErrDuplicate {
			return nil, validation.New("nit", msgNITDuplicado)
		}
		return nil, err
	}
	return toProviderResponse(provider, nil), nil
}

// GetByID obtiene el detalle de un proveedor con sus contactos adjuntos.
// Devuelve (nil, nil) si no existe.
func (uc *ProviderUseCase) GetByID(id int64) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	contacts, err := uc.contactRepo.ListByProvider(id)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(provider, contacts), nil
}

// Update reemplaza los campos editables con la misma validación de Create,
// excepto que la unicidad del NIT excluye al propio registro. Devuelve el
// estado recién persistido (lectura posterior a la escritura).
func (uc *ProviderUseCase) Update(id int64, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	normalizeProvider(&in)
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, validation.New("nit", msgNITDuplicado)
	}
	provider.Name = in.Name
	provider.NIT = in.NIT
	provider.Email = in.Email
	provider.Phone = in.Phone
	provider.Address = in.Address
	provider.Status = in.Status
	provider.UpdatedAt = time.Now()
	if err := uc.repo.Update(provider); err != nil {
		if err == domain.ErrDuplicate {
			return nil, validation.New("nit", msgNITDuplicado)
		}
		return nil, err
	}
	fresh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(fresh, nil), nil
}

// Delete elimina el proveedor; la FK borra sus contactos en cascada.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ProviderUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// normalizeProvider recorta espacios y traduce los sinónimos en español del
// estado (Activo/Inactivo, en cualquier capitalización) antes de validar.
func normalizeProvider(in *dto.ProviderRequest) {
	in.Name = strings.TrimSpace(in.Name)
	in.NIT = strings.TrimSpace(in.NIT)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Status = strings.TrimSpace(in.Status)

	switch strings.ToLower(in.Status) {
	case "activo", entity.StatusActive:
		in.Status = entity.StatusActive
	case "inactivo", entity.StatusInactive:
		in.Status = entity.StatusInactive
	}
}

func toProviderResponse(p *entity.Provider, contacts []*entity.ProviderContact) *dto.ProviderResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		NIT:       p.NIT,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, c := range contacts {
		out.Contacts = append(out.Contacts, *toContactResponse(c))
	}
	return out
}
