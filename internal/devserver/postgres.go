package devserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/dbx"
	"github.com/dmitrijs2005/reservas/internal/devserver/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// foreignKeyViolation is the SQLSTATE of a broken REFERENCES constraint.
const foreignKeyViolation = "23503"

// PostgresStore keeps the dev backend data in PostgreSQL.
type PostgresStore struct {
	db    dbx.DBTX
	close func() error
}

// OpenPostgres connects with pgx, applies the embedded migrations and makes
// sure the demo user exists.
func OpenPostgres(ctx context.Context, dsn, email, password string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.Migrations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	s := NewPostgresStore(db)
	s.close = db.Close
	if err := s.EnsureUser(ctx, email, password); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func NewPostgresStore(db dbx.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureUser creates the demo user with a bcrypt hash of password unless
// an account with that email already exists.
func (s *PostgresStore) EnsureUser(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	query :=
		`INSERT INTO users (email, password_hash, name, apellido, numero_documento, numero_telefonico, tipo_documento_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO NOTHING`

	_, err = s.db.ExecContext(ctx, query, email, hash,
		seedProfile.Name, seedProfile.Apellido, seedProfile.NumeroDocumento,
		seedProfile.NumeroTelefonico, seedProfile.TipoDocumentoID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresStore) UserByEmail(ctx context.Context, email string) (User, error) {
	query :=
		`SELECT id, email, password_hash FROM users
		 WHERE lower(email) = lower($1)`

	var u User
	err := s.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if err != nil {
		return User{}, notFound(err)
	}
	return u, nil
}

func (s *PostgresStore) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	query :=
		`SELECT name, apellido, numero_documento, numero_telefonico, COALESCE(tipo_documento_id, 0), email
		 FROM users WHERE id = $1`

	var p models.Profile
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.Name, &p.Apellido, &p.NumeroDocumento, &p.NumeroTelefonico, &p.TipoDocumentoID, &p.Email)
	if err != nil {
		return models.Profile{}, notFound(err)
	}
	return p, nil
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, userID int64, p models.ProfileUpdate) error {
	query :=
		`UPDATE users
		 SET name = $2, apellido = $3, numero_documento = $4, numero_telefonico = $5, tipo_documento_id = NULLIF($6, 0)
		 WHERE id = $1`

	err := dbx.ExecOne(ctx, s.db, query, userID,
		p.Name, p.Apellido, p.NumeroDocumento, p.NumeroTelefonico, p.TipoDocumentoID)
	return storeWriteError(err)
}

func (s *PostgresStore) DocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre FROM tipo_documentos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.DocumentType, 0)
	for rows.Next() {
		var d models.DocumentType
		if err := rows.Scan(&d.ID, &d.Nombre); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	query :=
		`SELECT r.id, r.vehiculoid, r.sucursalid, r.userid, r.fechar,
		        v.placa, v.marca, v.modelo,
		        s.nombre, s.interna,
		        u.name, u.apellido
		 FROM reservas r
		 JOIN vehiculos v ON v.id = r.vehiculoid
		 JOIN sucursales s ON s.id = r.sucursalid
		 JOIN users u ON u.id = r.userid
		 WHERE r.userid = $1
		 ORDER BY r.id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Reservation, 0)
	for rows.Next() {
		var (
			r    models.Reservation
			day  time.Time
			v    models.Vehicle
			b    models.Branch
			user models.UserSummary
		)
		if err := rows.Scan(&r.ID, &r.VehiculoID, &r.SucursalID, &r.UserID, &day,
			&v.Placa, &v.Marca, &v.Modelo, &b.Nombre, &b.Internal, &user.Name, &user.Apellido); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		r.Fechar = models.FormatDate(day)
		v.ID, b.ID, user.ID = r.VehiculoID, r.SucursalID, r.UserID
		r.Vehiculo, r.Sucursal, r.Usuario = &v, &b, &user
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Reservation(ctx context.Context, id int64) (models.Reservation, error) {
	query := `SELECT id, vehiculoid, sucursalid, userid, fechar FROM reservas WHERE id = $1`

	var (
		r   models.Reservation
		day time.Time
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.VehiculoID, &r.SucursalID, &r.UserID, &day)
	if err != nil {
		return models.Reservation{}, notFound(err)
	}
	r.Fechar = models.FormatDate(day)
	return r, nil
}

func (s *PostgresStore) CreateReservation(ctx context.Context, in models.ReservationInput) (models.Reservation, error) {
	query :=
		`INSERT INTO reservas (vehiculoid, sucursalid, userid, fechar)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`

	r := models.Reservation{VehiculoID: in.VehiculoID, SucursalID: in.SucursalID, UserID: in.UserID, Fechar: in.Fechar}
	err := s.db.QueryRowContext(ctx, query, in.VehiculoID, in.SucursalID, in.UserID, in.Fechar).Scan(&r.ID)
	if err != nil {
		return models.Reservation{}, storeWriteError(err)
	}
	return r, nil
}

func (s *PostgresStore) UpdateReservation(ctx context.Context, id int64, in models.ReservationInput) error {
	query :=
		`UPDATE reservas SET vehiculoid = $2, sucursalid = $3, userid = $4, fechar = $5
		 WHERE id = $1`

	return storeWriteError(dbx.ExecOne(ctx, s.db, query, id, in.VehiculoID, in.SucursalID, in.UserID, in.Fechar))
}

func (s *PostgresStore) DeleteReservation(ctx context.Context, id int64) error {
	return storeWriteError(dbx.ExecOne(ctx, s.db, `DELETE FROM reservas WHERE id = $1`, id))
}

func (s *PostgresStore) AvailableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	query :=
		`SELECT v.id, v.placa, v.marca, v.modelo FROM vehiculos v
		 WHERE NOT EXISTS (SELECT 1 FROM reservas r WHERE r.vehiculoid = v.id)
		 ORDER BY v.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Vehicle, 0)
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Placa, &v.Marca, &v.Modelo); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Branches(ctx context.Context) ([]models.Branch, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, nombre, interna FROM sucursales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Branch, 0)
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Internal); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func storeWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, dbx.ErrNoRowsAffected) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrInvalidReference
	}
	return fmt.Errorf("db error: %w", err)
}
