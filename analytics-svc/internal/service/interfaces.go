package service

import (
	"comanda-pos/analytics-svc/internal/domain"
)

type SalesInterface interface {
	ListVentas() ([]domain.Venta, error)
	VentasHoy() (*domain.VentasHoy, error)
	Resumen(days int) ([]domain.DailySummary, error)
	TopPlatos(limit int) ([]domain.PlatoRank, error)
}

var _ SalesInterface = (*SalesService)(nil)
