package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/infrastructure/memory"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildProviderUC(t *testing.T) (*usecase.ProviderUseCase, *usecase.ContactUseCase) {
	t.Helper()
	contactRepo := memory.NewProviderContactRepository()
	providerRepo := memory.NewProviderRepository(contactRepo)
	return usecase.NewProviderUseCase(providerRepo, contactRepo),
		usecase.NewContactUseCase(contactRepo, providerRepo)
}

func validProvider(nit string) dto.ProviderRequest {
	return dto.ProviderRequest{
		Name:   "Distribuidora Andina",
		NIT:    nit,
		Email:  "ventas@andina.co",
		Phone:  "3001234567",
		Status: "active",
	}
}

func mustCreate(t *testing.T, uc *usecase.ProviderUseCase, in dto.ProviderRequest) *dto.ProviderResponse {
	t.Helper()
	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProvider_DatosValidos(t *testing.T) {
	uc, _ := buildProviderUC(t)

	out := mustCreate(t, uc, validProvider("900123456-1"))

	assert.NotZero(t, out.ID)
	assert.Equal(t, "900123456-1", out.NIT)
	assert.Equal(t, "active", out.Status)
}

func TestCreateProvider_RecortaEspacios(t *testing.T) {
	uc, _ := buildProviderUC(t)

	in := validProvider("900123456-1")
	in.Name = "  Distribuidora Andina  "
	in.NIT = " 900123456-1 "
	out := mustCreate(t, uc, in)

	assert.Equal(t, "Distribuidora Andina", out.Name)
	assert.Equal(t, "900123456-1", out.NIT)
}

// Los sinónimos en español del estado se normalizan al valor canónico.
func TestCreateProvider_EstadoEnEspanol_SeNormaliza(t *testing.T) {
	uc, _ := buildProviderUC(t)

	casos := map[string]string{
		"Activo":   "active",
		"activo":   "active",
		"Inactivo": "inactive",
		"INACTIVO": "inactive",
	}
	i := 0
	for entrada, esperado := range casos {
		in := validProvider(fmt.Sprintf("nit-%d", i))
		in.Status = entrada
		out := mustCreate(t, uc, in)
		assert.Equal(t, esperado, out.Status, "status %q debe normalizarse a %q", entrada, esperado)
		i++
	}
}

func TestCreateProvider_EstadoDesconocido_ErrorDeValidacion(t *testing.T) {
	uc, _ := buildProviderUC(t)

	in := validProvider("900123456-1")
	in.Status = "pendiente"
	_, err := uc.Create(in)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "status")
}

func TestCreateProvider_CamposObligatorios(t *testing.T) {
	uc, _ := buildProviderUC(t)

	_, err := uc.Create(dto.ProviderRequest{})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	m := verrs.Map()
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "nit")
	assert.Contains(t, m, "status")
}

func TestCreateProvider_NITDuplicado_ErrorDeValidacion(t *testing.T) {
	uc, _ := buildProviderUC(t)
	mustCreate(t, uc, validProvider("900123456-1"))

	otro := validProvider("900123456-1")
	otro.Name = "Otro Proveedor"
	_, err := uc.Create(otro)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "nit")
	assert.Contains(t, verrs.First(), "NIT")
}

func TestCreateProvider_EmailInvalido_ErrorDeValidacion(t *testing.T) {
	uc, _ := buildProviderUC(t)

	in := validProvider("900123456-1")
	in.Email = "no-es-email"
	_, err := uc.Create(in)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "email")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — búsqueda, filtro y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestListProviders_OrdenPorIdDescendente(t *testing.T) {
	uc, _ := buildProviderUC(t)
	a := mustCreate(t, uc, validProvider("nit-1"))
	b := mustCreate(t, uc, validProvider("nit-2"))

	out, err := uc.List(dto.ListProvidersQuery{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, b.ID, out.Items[0].ID, "el más reciente va primero")
	assert.Equal(t, a.ID, out.Items[1].ID)
}

func TestListProviders_BusquedaCaseInsensitiveEnVariosCampos(t *testing.T) {
	uc, _ := buildProviderUC(t)

	in := validProvider("900123456-1")
	in.Name = "Distribuidora Andina"
	in.Phone = "3109998877"
	mustCreate(t, uc, in)

	otro := validProvider("800999999-2")
	otro.Name = "Ferretería Central"
	otro.Email = "compras@central.co"
	mustCreate(t, uc, otro)

	casos := map[string]string{
		"ANDINA":    "900123456-1", // por name, case-insensitive
		"900123":    "900123456-1", // por nit
		"central.c": "800999999-2", // por email
		"310999":    "900123456-1", // por phone
	}
	for term, nit := range casos {
		out, err := uc.List(dto.ListProvidersQuery{Search: term})
		require.NoError(t, err)
		require.Len(t, out.Items, 1, "search %q debe encontrar un solo proveedor", term)
		assert.Equal(t, nit, out.Items[0].NIT)
	}
}

func TestListProviders_FiltroPorEstado(t *testing.T) {
	uc, _ := buildProviderUC(t)
	mustCreate(t, uc, validProvider("nit-1"))

	inactivo := validProvider("nit-2")
	inactivo.Status = "inactive"
	mustCreate(t, uc, inactivo)

	out, err := uc.List(dto.ListProvidersQuery{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "nit-2", out.Items[0].NIT)
	assert.Equal(t, 1, out.Total)
}

func TestListProviders_PaginacionYLastPage(t *testing.T) {
	uc, _ := buildProviderUC(t)
	for i := 0; i < 25; i++ {
		mustCreate(t, uc, validProvider(fmt.Sprintf("nit-%02d", i)))
	}

	out, err := uc.List(dto.ListProvidersQuery{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, out.Items, 5, "la última página lleva el resto")
	assert.Equal(t, 3, out.CurrentPage)
	assert.Equal(t, 10, out.PerPage)
	assert.Equal(t, 3, out.LastPage)
	assert.Equal(t, 25, out.Total)
}

func TestListProviders_PaginaFueraDeRango_ListaVacia(t *testing.T) {
	uc, _ := buildProviderUC(t)
	mustCreate(t, uc, validProvider("nit-1"))

	out, err := uc.List(dto.ListProvidersQuery{Page: 9, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 1, out.LastPage)
}

func TestListProviders_PerPageSeAcota(t *testing.T) {
	uc, _ := buildProviderUC(t)

	out, err := uc.List(dto.ListProvidersQuery{PerPage: 150})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxPerPage, out.PerPage, "per_page > 100 se acota a 100")

	out, err = uc.List(dto.ListProvidersQuery{PerPage: 0})
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultPerPage, out.PerPage, "per_page <= 0 usa el default")

	out, err = uc.List(dto.ListProvidersQuery{Page: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, out.CurrentPage, "page < 1 se normaliza a 1")
}

func TestListProviders_SinResultados_LastPageEsUno(t *testing.T) {
	uc, _ := buildProviderUC(t)

	out, err := uc.List(dto.ListProvidersQuery{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Total)
	assert.Equal(t, 1, out.LastPage)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProvider_IncluyeContactos(t *testing.T) {
	uc, contactUC := buildProviderUC(t)
	p := mustCreate(t, uc, validProvider("nit-1"))

	_, err := contactUC.Create(p.ID, dto.CreateContactRequest{ContactName: "María Pérez"})
	require.NoError(t, err)

	out, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, out.Contacts, 1)
	assert.Equal(t, "María Pérez", out.Contacts[0].ContactName)
}

func TestGetProvider_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildProviderUC(t)

	out, err := uc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdateProvider_ReemplazaCampos(t *testing.T) {
	uc, _ := buildProviderUC(t)
	p := mustCreate(t, uc, validProvider("nit-1"))

	in := validProvider("nit-1")
	in.Name = "Nuevo Nombre"
	in.Status = "Inactivo"
	out, err := uc.Update(p.ID, in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Nuevo Nombre", out.Name)
	assert.Equal(t, "inactive", out.Status)
}

// Conservar el propio NIT al actualizar no debe contar como duplicado.
func TestUpdateProvider_MismoNIT_NoEsDuplicado(t *testing.T) {
	uc, _ := buildProviderUC(t)
	p := mustCreate(t, uc, validProvider("nit-1"))

	out, err := uc.Update(p.ID, validProvider("nit-1"))
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestUpdateProvider_NITDeOtro_ErrorDeValidacion(t *testing.T) {
	uc, _ := buildProviderUC(t)
	mustCreate(t, uc, validProvider("nit-1"))
	p2 := mustCreate(t, uc, validProvider("nit-2"))

	_, err := uc.Update(p2.ID, validProvider("nit-1"))

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "nit")
}

func TestUpdateProvider_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildProviderUC(t)

	out, err := uc.Update(42, validProvider("nit-1"))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDeleteProvider_BorraContactosEnCascada(t *testing.T) {
	uc, contactUC := buildProviderUC(t)
	p := mustCreate(t, uc, validProvider("nit-1"))

	c, err := contactUC.Create(p.ID, dto.CreateContactRequest{ContactName: "María Pérez"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(p.ID))

	gone, err := contactUC.GetByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "los contactos deben borrarse con el proveedor")
}

func TestDeleteProvider_Inexistente_NotFound(t *testing.T) {
	uc, _ := buildProviderUC(t)

	err := uc.Delete(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
