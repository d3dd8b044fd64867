package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"comanda-pos/order-svc/internal/domain"
	"comanda-pos/pricing"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateComanda(comanda *domain.Comanda) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO comandas (usuario_id, mesa_id, mesa_familiar_id, total)
		VALUES ($1, NULLIF($2, 0), NULLIF($3, 0), $4)
		RETURNING id, created_at
	`, comanda.UsuarioID, comanda.MesaID, comanda.MesaFamiliarID, comanda.Total).
		Scan(&comanda.ID, &comanda.CreatedAt); err != nil {
		return err
	}

	for i := range comanda.Items {
		item := &comanda.Items[i]
		if err := tx.QueryRow(`
			INSERT INTO comanda_items (comanda_id, plato_id, nombre, categoria, precio_unitario, cantidad, notas)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, comanda.ID, item.PlatoID, item.Nombre, string(item.Categoria),
			item.PrecioUnitario, item.Cantidad, item.Notas).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetComanda(id int) (*domain.Comanda, error) {
	return r.getComanda("c.id = $1", id)
}

func (r *PostgresRepository) GetComandaByMesa(mesaID int) (*domain.Comanda, error) {
	return r.getComanda("c.mesa_id = $1", mesaID)
}

func (r *PostgresRepository) GetComandaByFamiliar(familiarID int) (*domain.Comanda, error) {
	return r.getComanda("c.mesa_familiar_id = $1", familiarID)
}

func (r *PostgresRepository) getComanda(where string, arg interface{}) (*domain.Comanda, error) {
	var comanda domain.Comanda
	var mesaID, familiarID sql.NullInt64
	err := r.DB.QueryRow(`
		SELECT c.id, c.usuario_id, c.mesa_id, c.mesa_familiar_id, c.total, c.created_at
		FROM comandas c
		WHERE `+where+`
		ORDER BY c.created_at DESC
		LIMIT 1`, arg).
		Scan(&comanda.ID, &comanda.UsuarioID, &mesaID, &familiarID, &comanda.Total, &comanda.CreatedAt)
	if err != nil {
		return nil, err
	}
	comanda.MesaID = int(mesaID.Int64)
	comanda.MesaFamiliarID = int(familiarID.Int64)

	rows, err := r.DB.Query(`
		SELECT id, plato_id, nombre, categoria, precio_unitario, cantidad, COALESCE(notas, '')
		FROM comanda_items
		WHERE comanda_id = $1
		ORDER BY id ASC`, comanda.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ComandaItem
		var categoria string
		if err := rows.Scan(&item.ID, &item.PlatoID, &item.Nombre, &categoria,
			&item.PrecioUnitario, &item.Cantidad, &item.Notas); err != nil {
			continue
		}
		item.Categoria = pricing.Category(categoria)
		comanda.Items = append(comanda.Items, item)
	}

	return &comanda, nil
}

func (r *PostgresRepository) DeleteComanda(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM comanda_items WHERE comanda_id=$1", id); err != nil {
		return 0, err
	}
	result, err := tx.Exec("DELETE FROM comandas WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, tx.Commit()
}

func (r *PostgresRepository) SaveBoleta(boleta *domain.Boleta) error {
	receiptJSON, err := json.Marshal(boleta.Receipt)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO boletas (comanda_id, receipt, texto)
		VALUES ($1, $2, $3)
		ON CONFLICT (comanda_id) DO UPDATE SET receipt = EXCLUDED.receipt, texto = EXCLUDED.texto
		RETURNING created_at
	`, boleta.ComandaID, receiptJSON, boleta.Texto).Scan(&boleta.CreatedAt)
}

func (r *PostgresRepository) GetBoleta(comandaID int) (*domain.Boleta, error) {
	var boleta domain.Boleta
	var receiptJSON []byte
	err := r.DB.QueryRow(`
		SELECT comanda_id, receipt, texto, created_at
		FROM boletas
		WHERE comanda_id = $1`, comandaID).
		Scan(&boleta.ComandaID, &receiptJSON, &boleta.Texto, &boleta.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(receiptJSON, &boleta.Receipt); err != nil {
		return nil, err
	}
	return &boleta, nil
}

func (r *PostgresRepository) SaveBoletaQR(comandaID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE boletas SET qr_code = $1 WHERE comanda_id = $2", qr, comandaID)
	return err
}

func (r *PostgresRepository) GetBoletaQR(comandaID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM boletas WHERE comanda_id = $1", comandaID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS comandas (
			id SERIAL PRIMARY KEY,
			usuario_id INTEGER NOT NULL,
			mesa_id INTEGER,
			mesa_familiar_id INTEGER,
			total NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CHECK ((mesa_id IS NULL) <> (mesa_familiar_id IS NULL))
		)`,
		`CREATE TABLE IF NOT EXISTS comanda_items (
			id SERIAL PRIMARY KEY,
			comanda_id INTEGER NOT NULL REFERENCES comandas(id) ON DELETE CASCADE,
			plato_id INTEGER NOT NULL,
			nombre TEXT NOT NULL,
			categoria TEXT NOT NULL,
			precio_unitario NUMERIC(10,2) NOT NULL,
			cantidad INTEGER NOT NULL,
			notas TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS boletas (
			comanda_id INTEGER PRIMARY KEY,
			receipt JSONB NOT NULL,
			texto TEXT NOT NULL,
			qr_code BYTEA,
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
