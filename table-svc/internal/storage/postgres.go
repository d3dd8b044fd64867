package storage

import (
	"database/sql"
	"fmt"

	"comanda-pos/table-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateMesa(mesa *domain.Mesa) error {
	return r.DB.QueryRow(
		"INSERT INTO mesas (numero, estado) VALUES ($1, $2) RETURNING id, created_at",
		mesa.Numero, mesa.Estado,
	).Scan(&mesa.ID, &mesa.CreatedAt)
}

func (r *PostgresRepository) ListMesas() ([]domain.Mesa, error) {
	rows, err := r.DB.Query(`
		SELECT id, numero, estado, created_at
		FROM mesas
		ORDER BY numero ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []domain.Mesa
	for rows.Next() {
		var mesa domain.Mesa
		if err := rows.Scan(&mesa.ID, &mesa.Numero, &mesa.Estado, &mesa.CreatedAt); err != nil {
			continue
		}
		mesas = append(mesas, mesa)
	}
	return mesas, nil
}

func (r *PostgresRepository) GetMesa(id int) (*domain.Mesa, error) {
	var mesa domain.Mesa
	err := r.DB.QueryRow(`
		SELECT id, numero, estado, created_at
		FROM mesas
		WHERE id = $1`, id).
		Scan(&mesa.ID, &mesa.Numero, &mesa.Estado, &mesa.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &mesa, nil
}

func (r *PostgresRepository) UpdateMesaEstado(id int, estado string) (int64, error) {
	result, err := r.DB.Exec("UPDATE mesas SET estado=$1 WHERE id=$2", estado, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMesa(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM mesas WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateFamiliar(familiar *domain.MesaFamiliar, mesaIDs []int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO mesas_familiares (nombre, estado)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, familiar.Nombre, familiar.Estado).Scan(&familiar.ID, &familiar.CreatedAt); err != nil {
		return err
	}

	for _, mesaID := range mesaIDs {
		if _, err := tx.Exec(`
			INSERT INTO mesas_familiares_mesas (familiar_id, mesa_id)
			VALUES ($1, $2)
		`, familiar.ID, mesaID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListFamiliares() ([]domain.MesaFamiliar, error) {
	rows, err := r.DB.Query(`
		SELECT id, nombre, estado, created_at
		FROM mesas_familiares
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var familiares []domain.MesaFamiliar
	for rows.Next() {
		var familiar domain.MesaFamiliar
		if err := rows.Scan(&familiar.ID, &familiar.Nombre, &familiar.Estado, &familiar.CreatedAt); err != nil {
			continue
		}
		mesas, err := r.familiarMesas(familiar.ID)
		if err != nil {
			continue
		}
		familiar.Mesas = mesas
		familiares = append(familiares, familiar)
	}
	return familiares, nil
}

func (r *PostgresRepository) GetFamiliar(id int) (*domain.MesaFamiliar, error) {
	var familiar domain.MesaFamiliar
	err := r.DB.QueryRow(`
		SELECT id, nombre, estado, created_at
		FROM mesas_familiares
		WHERE id = $1`, id).
		Scan(&familiar.ID, &familiar.Nombre, &familiar.Estado, &familiar.CreatedAt)
	if err != nil {
		return nil, err
	}

	mesas, err := r.familiarMesas(id)
	if err != nil {
		return nil, err
	}
	familiar.Mesas = mesas
	return &familiar, nil
}

func (r *PostgresRepository) familiarMesas(familiarID int) ([]domain.Mesa, error) {
	rows, err := r.DB.Query(`
		SELECT m.id, m.numero, m.estado, m.created_at
		FROM mesas m
		JOIN mesas_familiares_mesas fm ON fm.mesa_id = m.id
		WHERE fm.familiar_id = $1
		ORDER BY m.numero ASC`, familiarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mesas []domain.Mesa
	for rows.Next() {
		var mesa domain.Mesa
		if err := rows.Scan(&mesa.ID, &mesa.Numero, &mesa.Estado, &mesa.CreatedAt); err != nil {
			continue
		}
		mesas = append(mesas, mesa)
	}
	return mesas, nil
}

func (r *PostgresRepository) UpdateFamiliar(id int, nombre, estado string) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE mesas_familiares SET nombre=$1, estado=$2 WHERE id=$3",
		nombre, estado, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteFamiliar(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM mesas_familiares_mesas WHERE familiar_id=$1", id); err != nil {
		return 0, err
	}
	result, err := tx.Exec("DELETE FROM mesas_familiares WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, tx.Commit()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mesas (
			id SERIAL PRIMARY KEY,
			numero INTEGER NOT NULL UNIQUE,
			estado TEXT NOT NULL DEFAULT 'Disponible',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS mesas_familiares (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			estado TEXT NOT NULL DEFAULT 'Disponible',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS mesas_familiares_mesas (
			familiar_id INTEGER NOT NULL REFERENCES mesas_familiares(id) ON DELETE CASCADE,
			mesa_id INTEGER NOT NULL REFERENCES mesas(id),
			PRIMARY KEY (familiar_id, mesa_id)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
