package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	anaProfile = models.Profile{
		Name: "Ana", Apellido: "Gil", NumeroDocumento: "123", NumeroTelefonico: "555",
		TipoDocumentoID: 1, Email: "ana@example.org",
	}
	docTypes = []models.DocumentType{{ID: 1, Nombre: "DNI"}, {ID: 2, Nombre: "Pasaporte"}}
)

func TestProfile_ShowOnly(t *testing.T) {
	ta := newTestApp("n").asUser()
	ta.prof.profile = anaProfile
	ta.prof.docTypes = docTypes

	require.NoError(t, ta.Profile(context.Background()))

	out := ta.output()
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "DNI")
	assert.Contains(t, out, "ana@example.org (read-only)")
	assert.Nil(t, ta.prof.saved)
	assert.Equal(t, RouteProfile, ta.router.Current().Route)
}

func TestProfile_EditAndSave(t *testing.T) {
	// y, name, apellido, tipo documento, numero documento, telefono
	ta := newTestApp("y", "Ana María", "", "2", "", "777").asUser()
	ta.prof.profile = anaProfile
	ta.prof.docTypes = docTypes

	require.NoError(t, ta.Profile(context.Background()))

	want := anaProfile
	want.Name = "Ana María"
	want.TipoDocumentoID = 2
	want.NumeroTelefonico = "777"
	require.NotNil(t, ta.prof.saved)
	assert.Empty(t, cmp.Diff(want, *ta.prof.saved))

	assert.Equal(t, "Profile updated", ta.notice.Text())
	assert.Contains(t, ta.status(), "Profile updated")
}

func TestProfile_InvalidDocumentTypeReprompts(t *testing.T) {
	ta := newTestApp("y", "", "", "9", "abc", "1", "", "").asUser()
	ta.prof.profile = anaProfile
	ta.prof.docTypes = docTypes

	require.NoError(t, ta.Profile(context.Background()))

	require.NotNil(t, ta.prof.saved)
	assert.EqualValues(t, 1, ta.prof.saved.TipoDocumentoID)
	assert.Contains(t, ta.output(), "[Invalid value]")
}

func TestProfile_LoadFailuresAlertIndependently(t *testing.T) {
	t.Run("profile fails, document types shown", func(t *testing.T) {
		ta := newTestApp("y", "Ana", "", "2", "", "").asUser()
		ta.prof.profileErr = errors.New("boom")
		ta.prof.docTypes = docTypes

		require.NoError(t, ta.Profile(context.Background()))

		out := ta.output()
		assert.Contains(t, out, "Could not load the profile")
		assert.NotContains(t, out, "Could not load the document types")
		assert.Contains(t, out, "2) Pasaporte")
		require.NotNil(t, ta.prof.saved)
		assert.Equal(t, "Ana", ta.prof.saved.Name)
	})

	t.Run("document types fail, profile shown", func(t *testing.T) {
		ta := newTestApp("n").asUser()
		ta.prof.profile = anaProfile
		ta.prof.docErr = errors.New("boom")

		require.NoError(t, ta.Profile(context.Background()))

		out := ta.output()
		assert.Contains(t, out, "Could not load the document types")
		assert.NotContains(t, out, "Could not load the profile")
		assert.Contains(t, out, "Gil")
	})
}

func TestProfile_SaveFailureAlerts(t *testing.T) {
	ta := newTestApp("y", "", "", "", "", "").asUser()
	ta.prof.profile = anaProfile
	ta.prof.saveErr = errors.New("boom")

	require.Error(t, ta.Profile(context.Background()))

	assert.Contains(t, ta.output(), "Could not update the profile")
	assert.Empty(t, ta.notice.Text())
}
