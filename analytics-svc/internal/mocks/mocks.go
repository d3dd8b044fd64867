// Package mocks holds testify mocks for the analytics-svc interfaces.
package mocks

import (
	"comanda-pos/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type SalesInterface struct {
	mock.Mock
}

func (m *SalesInterface) ListVentas() ([]domain.Venta, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venta), args.Error(1)
}

func (m *SalesInterface) VentasHoy() (*domain.VentasHoy, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VentasHoy), args.Error(1)
}

func (m *SalesInterface) Resumen(days int) ([]domain.DailySummary, error) {
	args := m.Called(days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}

func (m *SalesInterface) TopPlatos(limit int) ([]domain.PlatoRank, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlatoRank), args.Error(1)
}
