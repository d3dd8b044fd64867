// Package mocks holds testify mocks for the menu-svc interfaces.
package mocks

import (
	"testing"

	"comanda-pos/menu-svc/internal/domain"
	"comanda-pos/pricing"

	"github.com/stretchr/testify/mock"
)

type PlatoRepository struct {
	mock.Mock
}

func NewPlatoRepository(t *testing.T) *PlatoRepository {
	m := &PlatoRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PlatoRepository) CreatePlato(plato *domain.Plato) error {
	return m.Called(plato).Error(0)
}

func (m *PlatoRepository) ListPlatos() ([]domain.Plato, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plato), args.Error(1)
}

func (m *PlatoRepository) ListPlatosByCategoria(categoria pricing.Category) ([]domain.Plato, error) {
	args := m.Called(categoria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plato), args.Error(1)
}

func (m *PlatoRepository) GetPlato(id int) (*domain.Plato, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plato), args.Error(1)
}

func (m *PlatoRepository) UpdatePlato(plato *domain.Plato) error {
	return m.Called(plato).Error(0)
}

func (m *PlatoRepository) DeletePlato(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func (m *MenuServiceInterface) Create(plato *domain.Plato) error {
	return m.Called(plato).Error(0)
}

func (m *MenuServiceInterface) List(categoria pricing.Category) ([]domain.Plato, error) {
	args := m.Called(categoria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plato), args.Error(1)
}

func (m *MenuServiceInterface) Get(id int) (*domain.Plato, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plato), args.Error(1)
}

func (m *MenuServiceInterface) Update(plato *domain.Plato) error {
	return m.Called(plato).Error(0)
}

func (m *MenuServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}
