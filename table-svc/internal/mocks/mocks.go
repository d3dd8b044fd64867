// Package mocks holds testify mocks for the table-svc interfaces.
package mocks

import (
	"context"
	"testing"

	"comanda-pos/table-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t *testing.T) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) CreateMesa(mesa *domain.Mesa) error {
	return m.Called(mesa).Error(0)
}

func (m *TableRepository) ListMesas() ([]domain.Mesa, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mesa), args.Error(1)
}

func (m *TableRepository) GetMesa(id int) (*domain.Mesa, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mesa), args.Error(1)
}

func (m *TableRepository) UpdateMesaEstado(id int, estado string) (int64, error) {
	args := m.Called(id, estado)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) DeleteMesa(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) CreateFamiliar(familiar *domain.MesaFamiliar, mesaIDs []int) error {
	return m.Called(familiar, mesaIDs).Error(0)
}

func (m *TableRepository) ListFamiliares() ([]domain.MesaFamiliar, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MesaFamiliar), args.Error(1)
}

func (m *TableRepository) GetFamiliar(id int) (*domain.MesaFamiliar, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MesaFamiliar), args.Error(1)
}

func (m *TableRepository) UpdateFamiliar(id int, nombre, estado string) (int64, error) {
	args := m.Called(id, nombre, estado)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableRepository) DeleteFamiliar(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type EstadoCache struct {
	mock.Mock
}

func NewEstadoCache(t *testing.T) *EstadoCache {
	m := &EstadoCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EstadoCache) MesaKey(mesaID int) string {
	return m.Called(mesaID).String(0)
}

func (m *EstadoCache) GetEstado(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *EstadoCache) SetEstado(ctx context.Context, key, estado string) error {
	return m.Called(ctx, key, estado).Error(0)
}

type TableServiceInterface struct {
	mock.Mock
}

func (m *TableServiceInterface) CreateMesa(ctx context.Context, mesa *domain.Mesa) error {
	return m.Called(ctx, mesa).Error(0)
}

func (m *TableServiceInterface) ListMesas(ctx context.Context) ([]domain.Mesa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mesa), args.Error(1)
}

func (m *TableServiceInterface) GetMesa(ctx context.Context, id int) (*domain.Mesa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mesa), args.Error(1)
}

func (m *TableServiceInterface) UpdateMesaEstado(ctx context.Context, id int, estado string) error {
	return m.Called(ctx, id, estado).Error(0)
}

func (m *TableServiceInterface) DeleteMesa(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TableServiceInterface) CreateFamiliar(ctx context.Context, nombre string, mesaIDs []int) (*domain.MesaFamiliar, error) {
	args := m.Called(ctx, nombre, mesaIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MesaFamiliar), args.Error(1)
}

func (m *TableServiceInterface) ListFamiliares() ([]domain.MesaFamiliar, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MesaFamiliar), args.Error(1)
}

func (m *TableServiceInterface) GetFamiliar(id int) (*domain.MesaFamiliar, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MesaFamiliar), args.Error(1)
}

func (m *TableServiceInterface) UpdateFamiliar(ctx context.Context, id int, nombre, estado string) error {
	return m.Called(ctx, id, nombre, estado).Error(0)
}

func (m *TableServiceInterface) DeleteFamiliar(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
