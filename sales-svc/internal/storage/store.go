package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"comanda-pos/sales-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// RecordSale persists the confirmed sale and its plato breakdown.
func (s *Store) RecordSale(msg domain.SaleMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var ventaID int
	if err := tx.QueryRow(`
		INSERT INTO ventas (monto, fecha)
		VALUES ($1, $2)
		RETURNING id
	`, msg.Monto, msg.Fecha).Scan(&ventaID); err != nil {
		return err
	}

	for _, plato := range msg.Platos {
		if _, err := tx.Exec(`
			INSERT INTO venta_platos (venta_id, nombre, categoria, cantidad)
			VALUES ($1, $2, $3, $4)
		`, ventaID, plato.Nombre, plato.Categoria, plato.Cantidad); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateDailyAggregates keeps hot per-day counters in Redis so the admin
// dashboard reads never have to scan the ventas table.
func (s *Store) UpdateDailyAggregates(msg domain.SaleMessage) error {
	day := msg.Fecha.Format("2006-01-02")

	dailyKey := fmt.Sprintf("ventas:daily:%s", day)
	if err := s.rdb.IncrByFloat(s.ctx, dailyKey, msg.Monto).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	platosKey := fmt.Sprintf("ventas:platos:%s", day)
	for _, plato := range msg.Platos {
		s.rdb.ZIncrBy(s.ctx, platosKey, float64(plato.Cantidad), plato.Nombre)
	}
	s.rdb.Expire(s.ctx, platosKey, 7*24*time.Hour)

	return nil
}

func (s *Store) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ventas (
			id SERIAL PRIMARY KEY,
			monto NUMERIC(10,2) NOT NULL,
			fecha TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS venta_platos (
			id SERIAL PRIMARY KEY,
			venta_id INTEGER NOT NULL REFERENCES ventas(id) ON DELETE CASCADE,
			nombre TEXT NOT NULL,
			categoria TEXT NOT NULL,
			cantidad INTEGER NOT NULL CHECK (cantidad > 0)
		);

		CREATE INDEX IF NOT EXISTS idx_ventas_fecha ON ventas (fecha);
	`)
	return err
}
