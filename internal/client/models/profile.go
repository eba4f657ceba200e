package models

type DocumentType struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// Profile is the current user's editable profile. Email is owned by the
// server and is never part of an update.
type Profile struct {
	Name             string `json:"name"`
	Apellido         string `json:"apellido"`
	NumeroDocumento  string `json:"numero_documento"`
	NumeroTelefonico string `json:"numero_telefonico"`
	TipoDocumentoID  int64  `json:"tipo_documento_id"`
	Email            string `json:"email"`
}

// ProfileUpdate is the PUT /api/perfil payload. It has no email field.
type ProfileUpdate struct {
	Name             string `json:"name"`
	Apellido         string `json:"apellido"`
	NumeroDocumento  string `json:"numero_documento"`
	NumeroTelefonico string `json:"numero_telefonico"`
	TipoDocumentoID  int64  `json:"tipo_documento_id"`
}

// Update returns the submittable snapshot of p.
func (p Profile) Update() ProfileUpdate {
	return ProfileUpdate{
		Name:             p.Name,
		Apellido:         p.Apellido,
		NumeroDocumento:  p.NumeroDocumento,
		NumeroTelefonico: p.NumeroTelefonico,
		TipoDocumentoID:  p.TipoDocumentoID,
	}
}
