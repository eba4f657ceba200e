package forms

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/reservas/internal/client/models"
)

// ProfileField names an input of the profile screen.
type ProfileField string

const (
	FieldName             ProfileField = "name"
	FieldApellido         ProfileField = "apellido"
	FieldNumeroDocumento  ProfileField = "numero_documento"
	FieldNumeroTelefonico ProfileField = "numero_telefonico"
	FieldTipoDocumento    ProfileField = "tipo_documento_id"
	FieldEmail            ProfileField = "email"
)

// EditableProfileFields is the prompt order of the profile screen.
var EditableProfileFields = []ProfileField{
	FieldName, FieldApellido, FieldTipoDocumento, FieldNumeroDocumento, FieldNumeroTelefonico,
}

// ProfileForm is the state of the profile screen. Email is shown but can
// never be changed.
type ProfileForm struct {
	mu       sync.Mutex
	profile  models.Profile
	docTypes []models.DocumentType
}

func NewProfileForm() *ProfileForm {
	return &ProfileForm{}
}

func (f *ProfileForm) SetProfile(p models.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
}

func (f *ProfileForm) SetDocumentTypes(ds []models.DocumentType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docTypes = append([]models.DocumentType(nil), ds...)
}

func (f *ProfileForm) Profile() models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profile
}

func (f *ProfileForm) DocumentTypes() []models.DocumentType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.DocumentType(nil), f.docTypes...)
}

// Value renders the current value of field for display.
func (f *ProfileForm) Value(field ProfileField) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case FieldName:
		return f.profile.Name
	case FieldApellido:
		return f.profile.Apellido
	case FieldNumeroDocumento:
		return f.profile.NumeroDocumento
	case FieldNumeroTelefonico:
		return f.profile.NumeroTelefonico
	case FieldEmail:
		return f.profile.Email
	case FieldTipoDocumento:
		if f.profile.TipoDocumentoID == 0 {
			return ""
		}
		for _, d := range f.docTypes {
			if d.ID == f.profile.TipoDocumentoID {
				return d.Nombre
			}
		}
		return strconv.FormatInt(f.profile.TipoDocumentoID, 10)
	}
	return ""
}

// Set updates one editable field. The document type must be a numeric id
// from the loaded list (when a list has been loaded).
func (f *ProfileForm) Set(field ProfileField, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	value = strings.TrimSpace(value)

	switch field {
	case FieldName:
		f.profile.Name = value
	case FieldApellido:
		f.profile.Apellido = value
	case FieldNumeroDocumento:
		f.profile.NumeroDocumento = value
	case FieldNumeroTelefonico:
		f.profile.NumeroTelefonico = value
	case FieldTipoDocumento:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", field, ErrUnknownOption)
		}
		if len(f.docTypes) > 0 && !hasDocType(f.docTypes, id) {
			return fmt.Errorf("%s: %w", field, ErrUnknownOption)
		}
		f.profile.TipoDocumentoID = id
	case FieldEmail:
		return fmt.Errorf("%s: %w", field, ErrReadOnlyField)
	default:
		return fmt.Errorf("%s: %w", field, ErrUnknownField)
	}
	return nil
}

func hasDocType(ds []models.DocumentType, id int64) bool {
	for _, d := range ds {
		if d.ID == id {
			return true
		}
	}
	return false
}
