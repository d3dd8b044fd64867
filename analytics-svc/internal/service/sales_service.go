package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"comanda-pos/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type SalesService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewSalesService(db *sql.DB, rdb *redis.Client) *SalesService {
	return &SalesService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *SalesService) ListVentas() ([]domain.Venta, error) {
	return s.queryVentas(`
		SELECT id, monto, fecha
		FROM ventas
		ORDER BY fecha DESC
	`)
}

// VentasHoy reads the running total from the Redis counter sales-svc keeps
// per day and falls back to summing the ventas table when the counter is
// missing, e.g. after a Redis restart.
func (s *SalesService) VentasHoy() (*domain.VentasHoy, error) {
	today := time.Now().Format("2006-01-02")

	ventas, err := s.queryVentas(`
		SELECT id, monto, fecha
		FROM ventas
		WHERE fecha::date = CURRENT_DATE
		ORDER BY fecha DESC
	`)
	if err != nil {
		return nil, err
	}

	response := &domain.VentasHoy{Fecha: today, Ventas: ventas}

	cached, err := s.rdb.Get(s.ctx, "ventas:daily:"+today).Result()
	if err == nil {
		if total, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
			response.Total = total
			return response, nil
		}
	}

	if err := s.db.QueryRow(`
		SELECT COALESCE(SUM(monto), 0)
		FROM ventas
		WHERE fecha::date = CURRENT_DATE
	`).Scan(&response.Total); err != nil {
		return nil, err
	}
	return response, nil
}

// Resumen returns one row per day with its sales total, most recent first.
func (s *SalesService) Resumen(days int) ([]domain.DailySummary, error) {
	if days <= 0 {
		days = 7
	}
	rows, err := s.db.Query(`
		SELECT fecha::date::text AS dia, SUM(monto) AS monto
		FROM ventas
		WHERE fecha >= CURRENT_DATE - $1 * INTERVAL '1 day'
		GROUP BY dia
		ORDER BY dia DESC
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.DailySummary{}
	for rows.Next() {
		var summary domain.DailySummary
		if err := rows.Scan(&summary.Dia, &summary.Monto); err != nil {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// TopPlatos ranks today's best sellers from the Redis sorted set, falling
// back to the venta_platos table when the set is empty.
func (s *SalesService) TopPlatos(limit int) ([]domain.PlatoRank, error) {
	if limit <= 0 {
		limit = 10
	}
	today := time.Now().Format("2006-01-02")

	result, err := s.rdb.ZRevRangeWithScores(s.ctx, "ventas:platos:"+today, 0, int64(limit-1)).Result()
	if err == nil && len(result) > 0 {
		ranking := make([]domain.PlatoRank, 0, len(result))
		for _, member := range result {
			ranking = append(ranking, domain.PlatoRank{
				Nombre:   member.Member.(string),
				Cantidad: member.Score,
			})
		}
		return ranking, nil
	}

	return s.topPlatosFromDB(limit)
}

func (s *SalesService) topPlatosFromDB(limit int) ([]domain.PlatoRank, error) {
	rows, err := s.db.Query(`
		SELECT vp.nombre, SUM(vp.cantidad) AS cantidad
		FROM venta_platos vp
		JOIN ventas v ON vp.venta_id = v.id
		WHERE v.fecha::date = CURRENT_DATE
		GROUP BY vp.nombre
		ORDER BY cantidad DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranking := []domain.PlatoRank{}
	for rows.Next() {
		var rank domain.PlatoRank
		if err := rows.Scan(&rank.Nombre, &rank.Cantidad); err != nil {
			continue
		}
		ranking = append(ranking, rank)
	}
	return ranking, nil
}

func (s *SalesService) queryVentas(query string, args ...interface{}) ([]domain.Venta, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ventas := []domain.Venta{}
	for rows.Next() {
		var venta domain.Venta
		if err := rows.Scan(&venta.ID, &venta.Monto, &venta.Fecha); err != nil {
			continue
		}
		venta.Platos, _ = s.platosForVenta(venta.ID)
		ventas = append(ventas, venta)
	}
	return ventas, nil
}

func (s *SalesService) platosForVenta(ventaID int) ([]domain.VentaPlato, error) {
	rows, err := s.db.Query(`
		SELECT nombre, categoria, cantidad
		FROM venta_platos
		WHERE venta_id = $1
		ORDER BY id
	`, ventaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	platos := []domain.VentaPlato{}
	for rows.Next() {
		var plato domain.VentaPlato
		if err := rows.Scan(&plato.Nombre, &plato.Categoria, &plato.Cantidad); err != nil {
			continue
		}
		platos = append(platos, plato)
	}
	return platos, nil
}
