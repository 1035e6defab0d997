package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// ProviderHandler maneja las peticiones HTTP de proveedores (protegido).
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         providers
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre name, nit, email o phone"
// @Param        status    query  string  false  "active | inactive"
// @Param        page      query  int     false  "Página (1-based)"      default(1)
// @Param        per_page  query  int     false  "Tamaño de página 1-100" default(10)
// @Success      200       {object}  dto.APIResponse
// @Router       /api/providers [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	q := dto.ListProvidersQuery{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", dto.DefaultPerPage),
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Listado de proveedores.", out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         providers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProviderRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.APIResponse
// @Failure      422   {object}  dto.APIResponse
// @Router       /api/providers [post]
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.ProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo inválido.")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return respondValidation(c, verrs)
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusCreated, "Proveedor creado exitosamente.", out)
}

// GetByID godoc
// @Summary      Detalle de proveedor (con contactos)
// @Tags         providers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/providers/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	if out == nil {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	return respondOK(c, fiber.StatusOK, "Detalle del proveedor.", out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         providers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.ProviderRequest  true  "Datos del proveedor"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      422   {object}  dto.APIResponse
// @Router       /api/providers/{id} [put]
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	var in dto.ProviderRequest
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
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	return respondOK(c, fiber.StatusOK, "Proveedor actualizado.", out)
}

// Delete godoc
// @Summary      Eliminar proveedor (borra sus contactos en cascada)
// @Tags         providers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/providers/{id} [delete]
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Proveedor no encontrado.")
		}
		return respondError(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondOK(c, fiber.StatusOK, "Proveedor eliminado exitosamente.", nil)
}

// parseID lee el parámetro :id de la ruta. Un id no numérico se trata igual
// que un registro inexistente (404), como el route-model binding original.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
