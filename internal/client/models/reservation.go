// Package models defines the records exchanged with the reservation backend.
// Field names follow the backend's JSON verbatim.
package models

import (
	"errors"
	"time"
)

// DateLayout is the day-granularity wire format of Reservation.Fechar.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order by ParseDate; the backend may return a bare
// date or a full timestamp depending on serialization.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses a reservation date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day truncates t to midnight of its calendar day in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type Vehicle struct {
	ID     int64  `json:"id"`
	Placa  string `json:"placa"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
}

func (v Vehicle) Label() string {
	return v.Placa + " - " + v.Marca + " - " + v.Modelo
}

// Branch is a sucursal. Internal branches are operational locations that
// cannot be chosen for a new reservation.
type Branch struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Internal bool   `json:"interna,omitempty"`
}

// UserSummary is the denormalized user attached to a listed reservation.
type UserSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Apellido string `json:"apellido,omitempty"`
}

// Reservation is a booking of a vehicle at a branch on a given day.
// Vehiculo, Usuario and Sucursal are only populated on list responses.
type Reservation struct {
	ID         int64        `json:"id"`
	VehiculoID int64        `json:"vehiculoid"`
	Fechar     string       `json:"fechar"`
	SucursalID int64        `json:"sucursalid"`
	UserID     int64        `json:"userId,omitempty"`
	Vehiculo   *Vehicle     `json:"vehiculo,omitempty"`
	Usuario    *UserSummary `json:"usuario,omitempty"`
	Sucursal   *Branch      `json:"sucursal,omitempty"`
}

// ReservationInput is the create/update payload.
type ReservationInput struct {
	VehiculoID int64  `json:"vehiculoid"`
	Fechar     string `json:"fechar"`
	SucursalID int64  `json:"sucursalid"`
	UserID     int64  `json:"userId"`
}
