package devserver

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewPostgresStore(db), mock
}

func TestPostgres_UserByEmail(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectQuery(`(?s)SELECT id, email, password_hash FROM users\s+WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("demo@reservas.dev").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).AddRow(12, "demo@reservas.dev", []byte("hash")))

	u, err := s.UserByEmail(context.Background(), "demo@reservas.dev")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 12, Email: "demo@reservas.dev", PasswordHash: []byte("hash")}, u)

	mock.ExpectQuery(`SELECT id, email, password_hash FROM users`).
		WithArgs("x@y").
		WillReturnError(sql.ErrNoRows)
	_, err = s.UserByEmail(context.Background(), "x@y")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ReservationsByUser(t *testing.T) {
	s, mock := newStoreWithMock(t)

	cols := []string{"id", "vehiculoid", "sucursalid", "userid", "fechar", "placa", "marca", "modelo", "nombre", "interna", "name", "apellido"}
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)FROM reservas r.*WHERE r.userid = \$1`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(101, 5, 2, 12, day, "CDE-301", "Hyundai", "Tucson", "Norte", false, "Demo", "Usuario"))

	list, err := s.ReservationsByUser(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, list, 1)

	r := list[0]
	assert.Equal(t, "2025-06-01", r.Fechar)
	assert.Equal(t, &models.Vehicle{ID: 5, Placa: "CDE-301", Marca: "Hyundai", Modelo: "Tucson"}, r.Vehiculo)
	assert.Equal(t, &models.Branch{ID: 2, Nombre: "Norte"}, r.Sucursal)
	assert.Equal(t, &models.UserSummary{ID: 12, Name: "Demo", Apellido: "Usuario"}, r.Usuario)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateReservation(t *testing.T) {
	s, mock := newStoreWithMock(t)
	in := models.ReservationInput{VehiculoID: 5, SucursalID: 2, Fechar: "2025-06-01", UserID: 12}

	q := `(?s)^INSERT\s+INTO\s+reservas\s*\(vehiculoid,\s*sucursalid,\s*userid,\s*fechar\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*RETURNING\s+id$`
	mock.ExpectQuery(q).WithArgs(int64(5), int64(2), int64(12), "2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

	r, err := s.CreateReservation(context.Background(), in)
	require.NoError(t, err)
	assert.EqualValues(t, 101, r.ID)

	mock.ExpectQuery(q).WithArgs(int64(99), int64(2), int64(12), "2025-06-01").
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolation})
	in.VehiculoID = 99
	_, err = s.CreateReservation(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidReference)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteReservation(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(`DELETE FROM reservas WHERE id = \$1`).WithArgs(int64(101)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM reservas WHERE id = \$1`).WithArgs(int64(999)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM reservas WHERE id = \$1`).WithArgs(int64(1)).WillReturnError(errors.New("db down"))

	ctx := context.Background()
	require.NoError(t, s.DeleteReservation(ctx, 101))
	require.ErrorIs(t, s.DeleteReservation(ctx, 999), ErrNotFound)

	err := s.DeleteReservation(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateProfile(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(`(?s)UPDATE users\s+SET name = \$2.*WHERE id = \$1`).
		WithArgs(int64(12), "Ana", "Gil", "123", "555", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateProfile(context.Background(), 12, models.ProfileUpdate{
		Name: "Ana", Apellido: "Gil", NumeroDocumento: "123", NumeroTelefonico: "555", TipoDocumentoID: 2,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_AvailableVehicles(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectQuery(`(?s)FROM vehiculos v\s+WHERE NOT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "placa", "marca", "modelo"}).
			AddRow(5, "CDE-301", "Hyundai", "Tucson").
			AddRow(6, "CDE-302", "Kia", "Rio"))

	vs, err := s.AvailableVehicles(context.Background())
	require.NoError(t, err)
	assert.Len(t, vs, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_EnsureUser(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectExec(`(?s)INSERT INTO users .* ON CONFLICT \(email\) DO NOTHING`).
		WithArgs("demo@reservas.dev", sqlmock.AnyArg(), "Demo", "Usuario", "12345678", "999888777", int64(1)).
		WillReturnResult(sqlmock.NewResult(12, 1))

	require.NoError(t, s.EnsureUser(context.Background(), "demo@reservas.dev", "demo1234"))
	require.NoError(t, mock.ExpectationsWereMet())
}
