package client

import "github.com/dmitrijs2005/reservas/internal/client/models"

// Response envelopes of the backend.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *struct {
		ID int64 `json:"id"`
	} `json:"user"`
}

// profileWire is the GET /api/perfil shape: the document type arrives
// nested and is flattened into Profile.TipoDocumentoID.
type profileWire struct {
	Name             string               `json:"name"`
	Apellido         string               `json:"apellido"`
	NumeroDocumento  string               `json:"numero_documento"`
	NumeroTelefonico string               `json:"numero_telefonico"`
	TipoDocumentoID  int64                `json:"tipo_documento_id"`
	TipoDocumento    *models.DocumentType `json:"tipo_documento"`
	Email            string               `json:"email"`
}

func (w profileWire) profile() models.Profile {
	p := models.Profile{
		Name:             w.Name,
		Apellido:         w.Apellido,
		NumeroDocumento:  w.NumeroDocumento,
		NumeroTelefonico: w.NumeroTelefonico,
		TipoDocumentoID:  w.TipoDocumentoID,
		Email:            w.Email,
	}
	if w.TipoDocumento != nil {
		p.TipoDocumentoID = w.TipoDocumento.ID
	}
	return p
}

type profileResponse struct {
	Data *profileWire `json:"data"`
}

type documentTypesResponse struct {
	TipoDocumentos []models.DocumentType `json:"tipo_documentos"`
}

type reservationsResponse struct {
	Reservas []models.Reservation `json:"reservas"`
}

type vehiclesResponse struct {
	Vehiculos []models.Vehicle `json:"vehiculos"`
}

type branchesResponse struct {
	Sucursales []models.Branch `json:"sucursales"`
}
