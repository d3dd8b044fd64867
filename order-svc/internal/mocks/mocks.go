// Package mocks holds testify mocks for the order-svc interfaces.
package mocks

import (
	"context"
	"testing"

	"comanda-pos/order-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ComandaRepository struct {
	mock.Mock
}

func NewComandaRepository(t *testing.T) *ComandaRepository {
	m := &ComandaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ComandaRepository) CreateComanda(comanda *domain.Comanda) error {
	return m.Called(comanda).Error(0)
}

func (m *ComandaRepository) GetComanda(id int) (*domain.Comanda, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *ComandaRepository) GetComandaByMesa(mesaID int) (*domain.Comanda, error) {
	args := m.Called(mesaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *ComandaRepository) GetComandaByFamiliar(familiarID int) (*domain.Comanda, error) {
	args := m.Called(familiarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *ComandaRepository) DeleteComanda(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ComandaRepository) SaveBoleta(boleta *domain.Boleta) error {
	return m.Called(boleta).Error(0)
}

func (m *ComandaRepository) GetBoleta(comandaID int) (*domain.Boleta, error) {
	args := m.Called(comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boleta), args.Error(1)
}

func (m *ComandaRepository) SaveBoletaQR(comandaID int, qr []byte) error {
	return m.Called(comandaID, qr).Error(0)
}

func (m *ComandaRepository) GetBoletaQR(comandaID int) ([]byte, error) {
	args := m.Called(comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type SalePublisher struct {
	mock.Mock
}

func NewSalePublisher(t *testing.T) *SalePublisher {
	m := &SalePublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SalePublisher) PublishSale(ctx context.Context, msg domain.SaleMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t *testing.T) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(comandaID int) ([]byte, error) {
	args := m.Called(comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func (m *OrderServiceInterface) Create(ctx context.Context, comanda *domain.Comanda) error {
	return m.Called(ctx, comanda).Error(0)
}

func (m *OrderServiceInterface) Get(id int) (*domain.Comanda, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *OrderServiceInterface) GetByMesa(mesaID int) (*domain.Comanda, error) {
	args := m.Called(mesaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *OrderServiceInterface) GetByFamiliar(familiarID int) (*domain.Comanda, error) {
	args := m.Called(familiarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comanda), args.Error(1)
}

func (m *OrderServiceInterface) Delete(id int) error {
	return m.Called(id).Error(0)
}

func (m *OrderServiceInterface) ConfirmarPago(ctx context.Context, comandaID int) (*domain.Boleta, error) {
	args := m.Called(ctx, comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boleta), args.Error(1)
}

func (m *OrderServiceInterface) GetBoleta(comandaID int) (*domain.Boleta, error) {
	args := m.Called(comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boleta), args.Error(1)
}

func (m *OrderServiceInterface) GetBoletaQR(comandaID int) ([]byte, error) {
	args := m.Called(comandaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
