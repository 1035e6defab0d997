package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// ContactHandler maneja los contactos de proveedor (protegido). Listado y
// creación van anidados bajo /providers/:id/contacts; detalle, actualización
// y borrado son planos en /contacts/:id (shallow nesting).
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// ListByProvider godoc
// @Summary      Listar contactos de un proveedor
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/providers/{id}/contacts [get]
func (h *ContactHandler) ListByProvider(c *fiber.Ctx) error {
	providerID, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	out, err := h.uc.List(providerID)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Listado de contactos.", out)
}

// Create godoc
// @Summary      Crear contacto para un proveedor
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.CreateContactRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      422   {object}  dto.APIResponse
// @Router       /api/providers/{id}/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	providerID, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo inválido.")
	}
	out, err := h.uc.Create(providerID, in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		if errors.Is(err, domain.ErrProviderNotFound) {
			return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusCreated, "Contacto creado exitosamente.", out)
}

// GetByID godoc
// @Summary      Detalle de contacto
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contacto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
	}
	return respondOK(c, fiber.StatusOK, "Detalle del contacto.", out)
}

// Update godoc
// @Summary      Actualizar contacto
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del contacto"
// @Param        body  body  dto.UpdateContactRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      422   {object}  dto.APIResponse
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
	}
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo inválido.")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
	}
	return respondOK(c, fiber.StatusOK, "Contacto actualizado.", out)
}

// Delete godoc
// @Summary      Eliminar contacto
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contacto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Contacto no encontrado.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Contacto eliminado.", nil)
}
