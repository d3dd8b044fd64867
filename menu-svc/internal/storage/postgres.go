package storage

import (
	"database/sql"
	"fmt"

	"comanda-pos/menu-svc/internal/domain"
	"comanda-pos/pricing"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreatePlato(plato *domain.Plato) error {
	return r.DB.QueryRow(
		"INSERT INTO platos (nombre, categoria, precio) VALUES ($1, $2, $3) RETURNING id, created_at",
		plato.Nombre, string(plato.Categoria), plato.Precio,
	).Scan(&plato.ID, &plato.CreatedAt)
}

func (r *PostgresRepository) ListPlatos() ([]domain.Plato, error) {
	return r.queryPlatos(`
		SELECT id, nombre, categoria, precio, created_at
		FROM platos
		ORDER BY categoria, nombre`)
}

func (r *PostgresRepository) ListPlatosByCategoria(categoria pricing.Category) ([]domain.Plato, error) {
	return r.queryPlatos(`
		SELECT id, nombre, categoria, precio, created_at
		FROM platos
		WHERE categoria = $1
		ORDER BY nombre`, string(categoria))
}

func (r *PostgresRepository) queryPlatos(query string, args ...interface{}) ([]domain.Plato, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platos []domain.Plato
	for rows.Next() {
		var plato domain.Plato
		var categoria string
		if err := rows.Scan(&plato.ID, &plato.Nombre, &categoria, &plato.Precio, &plato.CreatedAt); err != nil {
			continue
		}
		plato.Categoria = pricing.Category(categoria)
		platos = append(platos, plato)
	}
	return platos, nil
}

func (r *PostgresRepository) GetPlato(id int) (*domain.Plato, error) {
	var plato domain.Plato
	var categoria string
	err := r.DB.QueryRow(`
		SELECT id, nombre, categoria, precio, created_at
		FROM platos
		WHERE id = $1`, id).
		Scan(&plato.ID, &plato.Nombre, &categoria, &plato.Precio, &plato.CreatedAt)
	if err != nil {
		return nil, err
	}
	plato.Categoria = pricing.Category(categoria)
	return &plato, nil
}

func (r *PostgresRepository) UpdatePlato(plato *domain.Plato) error {
	_, err := r.DB.Exec(`
		UPDATE platos
		SET nombre=$1, categoria=$2, precio=$3
		WHERE id=$4`,
		plato.Nombre, string(plato.Categoria), plato.Precio, plato.ID)
	return err
}

func (r *PostgresRepository) DeletePlato(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM platos WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS platos (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			categoria TEXT NOT NULL,
			precio NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
