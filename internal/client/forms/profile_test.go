package forms

import (
	"testing"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForm_SetFields(t *testing.T) {
	f := NewProfileForm()
	f.SetProfile(models.Profile{Name: "Ana", Email: "ana@example.org", TipoDocumentoID: 1})
	f.SetDocumentTypes([]models.DocumentType{{ID: 1, Nombre: "DNI"}, {ID: 2, Nombre: "Pasaporte"}})

	require.NoError(t, f.Set(FieldName, " Ana María "))
	require.NoError(t, f.Set(FieldApellido, "Gil"))
	require.NoError(t, f.Set(FieldNumeroDocumento, "123"))
	require.NoError(t, f.Set(FieldNumeroTelefonico, "555"))
	require.NoError(t, f.Set(FieldTipoDocumento, "2"))

	assert.Equal(t, models.Profile{
		Name: "Ana María", Apellido: "Gil", NumeroDocumento: "123", NumeroTelefonico: "555",
		TipoDocumentoID: 2, Email: "ana@example.org",
	}, f.Profile())
	assert.Equal(t, "Pasaporte", f.Value(FieldTipoDocumento))
}

func TestProfileForm_EmailIsReadOnly(t *testing.T) {
	f := NewProfileForm()
	f.SetProfile(models.Profile{Email: "ana@example.org"})

	require.ErrorIs(t, f.Set(FieldEmail, "evil@example.org"), ErrReadOnlyField)
	assert.Equal(t, "ana@example.org", f.Value(FieldEmail))
}

func TestProfileForm_DocumentTypeValidation(t *testing.T) {
	f := NewProfileForm()
	f.SetProfile(models.Profile{TipoDocumentoID: 1})

	require.ErrorIs(t, f.Set(FieldTipoDocumento, "abc"), ErrUnknownOption)

	// Without a loaded list any numeric id is accepted.
	require.NoError(t, f.Set(FieldTipoDocumento, "9"))
	assert.Equal(t, "9", f.Value(FieldTipoDocumento))

	f.SetDocumentTypes([]models.DocumentType{{ID: 1, Nombre: "DNI"}})
	require.ErrorIs(t, f.Set(FieldTipoDocumento, "9"), ErrUnknownOption)
	assert.EqualValues(t, 9, f.Profile().TipoDocumentoID)
}

func TestProfileForm_UnknownField(t *testing.T) {
	require.ErrorIs(t, NewProfileForm().Set("color", "red"), ErrUnknownField)
}
