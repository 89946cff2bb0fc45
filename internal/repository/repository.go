package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jkarlost/calculadora/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the tables if they do not exist. The store is append-only:
// there are no update or delete paths, so no further schema logic is needed.
func (r *Repository) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS usuarios (
		id BIGSERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		edad INTEGER NOT NULL,
		email TEXT NOT NULL,
		telefono TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS finanzas (
		id BIGSERIAL PRIMARY KEY,
		usuario_id BIGINT NOT NULL REFERENCES usuarios(id),
		ingresos_mensuales NUMERIC(20,2) NOT NULL,
		gastos_mensuales NUMERIC(20,2) NOT NULL,
		activos_totales NUMERIC(20,2) NOT NULL,
		pasivos_totales NUMERIC(20,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CreateUser inserts a new user profile
func (r *Repository) CreateUser(user *models.UserProfile) error {
	query := `
		INSERT INTO usuarios (nombre, edad, email, telefono, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Nombre, user.Edad, user.Email, user.Telefono).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user profile by ID
func (r *Repository) FindUserByID(id int64) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	query := `
		SELECT id, nombre, edad, email, telefono, created_at
		FROM usuarios
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Nombre, &user.Edad, &user.Email, &user.Telefono, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateFinances inserts a financial-snapshot row for a user
func (r *Repository) CreateFinances(rec *models.FinancesRecord) error {
	query := `
		INSERT INTO finanzas (usuario_id, ingresos_mensuales, gastos_mensuales, activos_totales, pasivos_totales, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id`
	err := r.db.QueryRow(query, rec.UserID, rec.MonthlyIncome, rec.MonthlyExpenses, rec.TotalAssets, rec.TotalLiabilities).
		Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to create finances record: %w", err)
	}
	return nil
}

// FindUsersRegisteredSince lists users created after the given time, used by
// the follow-up job.
func (r *Repository) FindUsersRegisteredSince(since time.Time) ([]models.UserProfile, error) {
	query := `
		SELECT id, nombre, edad, email, telefono, created_at
		FROM usuarios
		WHERE created_at >= $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.UserProfile
	for rows.Next() {
		var u models.UserProfile
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Edad, &u.Email, &u.Telefono, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
