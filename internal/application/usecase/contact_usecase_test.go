package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/usecase"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/pkg/validation"
)

func buildContactUC(t *testing.T) (*usecase.ContactUseCase, int64) {
	t.Helper()
	providerUC, contactUC := buildProviderUC(t)
	p := mustCreate(t, providerUC, validProvider("900123456-1"))
	return contactUC, p.ID
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / List (anidados bajo el proveedor)
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateContact_DatosValidos(t *testing.T) {
	uc, providerID := buildContactUC(t)

	out, err := uc.Create(providerID, dto.CreateContactRequest{
		ContactName:  "  María Pérez  ",
		ContactEmail: "maria@andina.co",
		ContactPhone: "3004445566",
		Position:     "Gerente comercial",
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, providerID, out.ProviderID)
	assert.Equal(t, "María Pérez", out.ContactName, "el nombre se recorta")
	assert.Equal(t, "Gerente comercial", out.Position)
}

func TestCreateContact_ProveedorInexistente_NotFound(t *testing.T) {
	uc, _ := buildContactUC(t)

	_, err := uc.Create(999, dto.CreateContactRequest{ContactName: "María"})
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestCreateContact_SinNombre_ErrorDeValidacion(t *testing.T) {
	uc, providerID := buildContactUC(t)

	_, err := uc.Create(providerID, dto.CreateContactRequest{ContactEmail: "maria@andina.co"})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "contact_name")
}

func TestCreateContact_EmailInvalido_ErrorDeValidacion(t *testing.T) {
	uc, providerID := buildContactUC(t)

	_, err := uc.Create(providerID, dto.CreateContactRequest{
		ContactName:  "María",
		ContactEmail: "no-es-email",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "contact_email")
}

func TestListContacts_OrdenPorIdDescendente(t *testing.T) {
	uc, providerID := buildContactUC(t)

	a, err := uc.Create(providerID, dto.CreateContactRequest{ContactName: "Primero"})
	require.NoError(t, err)
	b, err := uc.Create(providerID, dto.CreateContactRequest{ContactName: "Segundo"})
	require.NoError(t, err)

	out, err := uc.List(providerID)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, b.ID, out[0].ID, "el más reciente va primero")
	assert.Equal(t, a.ID, out[1].ID)
}

func TestListContacts_ProveedorInexistente_NotFound(t *testing.T) {
	uc, _ := buildContactUC(t)

	_, err := uc.List(999)
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}

func TestListContacts_SinContactos_ListaVacia(t *testing.T) {
	uc, providerID := buildContactUC(t)

	out, err := uc.List(providerID)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetByID / Update / Delete (planos)
// ──────────────────────────────────────────────────────────────────────────────

func TestGetContact_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildContactUC(t)

	out, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Los campos ausentes del body conservan su valor (actualización parcial).
func TestUpdateContact_Parcial_ConservaCamposAusentes(t *testing.T) {
	uc, providerID := buildContactUC(t)

	c, err := uc.Create(providerID, dto.CreateContactRequest{
		ContactName:  "María Pérez",
		ContactEmail: "maria@andina.co",
		Position:     "Gerente comercial",
	})
	require.NoError(t, err)

	out, err := uc.Update(c.ID, dto.UpdateContactRequest{
		ContactPhone: strPtr("3017778899"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "3017778899", out.ContactPhone)
	assert.Equal(t, "María Pérez", out.ContactName)
	assert.Equal(t, "maria@andina.co", out.ContactEmail)
	assert.Equal(t, "Gerente comercial", out.Position)
}

func TestUpdateContact_NombreVacio_ErrorDeValidacion(t *testing.T) {
	uc, providerID := buildContactUC(t)

	c, err := uc.Create(providerID, dto.CreateContactRequest{ContactName: "María"})
	require.NoError(t, err)

	_, err = uc.Update(c.ID, dto.UpdateContactRequest{ContactName: strPtr("   ")})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Map(), "contact_name")
}

func TestUpdateContact_VaciarCampoOpcional(t *testing.T) {
	uc, providerID := buildContactUC(t)

	c, err := uc.Create(providerID, dto.CreateContactRequest{
		ContactName: "María",
		Position:    "Gerente",
	})
	require.NoError(t, err)

	out, err := uc.Update(c.ID, dto.UpdateContactRequest{Position: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, out.Position, "enviar cadena vacía limpia el campo opcional")
}

func TestUpdateContact_Inexistente_NilSinError(t *testing.T) {
	uc, _ := buildContactUC(t)

	out, err := uc.Update(999, dto.UpdateContactRequest{ContactName: strPtr("María")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDeleteContact_NoAfectaAlProveedor(t *testing.T) {
	providerUC, contactUC := buildProviderUC(t)
	p := mustCreate(t, providerUC, validProvider("nit-1"))

	c, err := contactUC.Create(p.ID, dto.CreateContactRequest{ContactName: "María"})
	require.NoError(t, err)

	require.NoError(t, contactUC.Delete(c.ID))

	vivo, err := providerUC.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, vivo, "borrar un contacto no borra al proveedor")
	assert.Empty(t, vivo.Contacts)
}

func TestDeleteContact_Inexistente_NotFound(t *testing.T) {
	uc, _ := buildContactUC(t)

	err := uc.Delete(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
