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

// ContactUseCase casos de uso para contactos de proveedor. El listado y la
// creación van anidados bajo el proveedor; detalle, actualización y borrado
// operan sobre el contacto plano (shallow nesting).
type ContactUseCase struct {
	repo         repository.ProviderContactRepository
	providerRepo repository.ProviderRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ProviderContactRepository, providerRepo repository.ProviderRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo, providerRepo: providerRepo}
}

// List lista los contactos de un proveedor, ordenados por id descendente.
// Devuelve domain.ErrProviderNotFound si el proveedor no existe.
func (uc *ContactUseCase) List(providerID int64) ([]dto.ContactResponse, error) {
	provider, err := uc.providerRepo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrProviderNotFound
	}
	list, err := uc.repo.ListByProvider(providerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

// Create crea un contacto asociado al proveedor dado.
// Devuelve domain.ErrProviderNotFound si el proveedor no existe.
func (uc *ContactUseCase) Create(providerID int64, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	provider, err := uc.providerRepo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrProviderNotFound
	}
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	in.Position = strings.TrimSpace(in.Position)
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	now := time.Now()
	contact := &entity.ProviderContact{
		ProviderID:   providerID,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Position:     in.Position,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID obtiene un contacto por id. Devuelve (nil, nil) si no existe.
func (uc *ContactUseCase) GetByID(id int64) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	return toContactResponse(contact), nil
}

// Update actualiza un contacto (parcial o total: los campos ausentes
// conservan su valor). Devuelve (nil, nil) si no existe y el estado fresco
// tras persistir si existe.
func (uc *ContactUseCase) Update(id int64, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	trimPtr(in.ContactName)
	trimPtr(in.ContactEmail)
	trimPtr(in.ContactPhone)
	trimPtr(in.Position)
	if errs := validation.Struct(in); errs != nil {
		return nil, errs
	}
	if in.ContactName != nil {
		if *in.ContactName == "" {
			return nil, validation.New("contact_name", "El campo contact_name es obligatorio.")
		}
		contact.ContactName = *in.ContactName
	}
	if in.ContactEmail != nil {
		contact.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		contact.ContactPhone = *in.ContactPhone
	}
	if in.Position != nil {
		contact.Position = *in.Position
	}
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	fresh, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toContactResponse(fresh), nil
}

// Delete elimina el contacto; no afecta al proveedor dueño.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ContactUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func toContactResponse(c *entity.ProviderContact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:           c.ID,
		ProviderID:   c.ProviderID,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		Position:     c.Position,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
