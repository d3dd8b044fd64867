package service

import (
	"context"

	"comanda-pos/order-svc/internal/domain"
)

type ComandaRepository interface {
	CreateComanda(comanda *domain.Comanda) error
	GetComanda(id int) (*domain.Comanda, error)
	GetComandaByMesa(mesaID int) (*domain.Comanda, error)
	GetComandaByFamiliar(familiarID int) (*domain.Comanda, error)
	DeleteComanda(id int) (int64, error)

	SaveBoleta(boleta *domain.Boleta) error
	GetBoleta(comandaID int) (*domain.Boleta, error)
	SaveBoletaQR(comandaID int, qr []byte) error
	GetBoletaQR(comandaID int) ([]byte, error)
}

type SalePublisher interface {
	PublishSale(ctx context.Context, msg domain.SaleMessage) error
}

type QRGenerator interface {
	Generate(comandaID int) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, comanda *domain.Comanda) error
	Get(id int) (*domain.Comanda, error)
	GetByMesa(mesaID int) (*domain.Comanda, error)
	GetByFamiliar(familiarID int) (*domain.Comanda, error)
	Delete(id int) error

	ConfirmarPago(ctx context.Context, comandaID int) (*domain.Boleta, error)
	GetBoleta(comandaID int) (*domain.Boleta, error)
	GetBoletaQR(comandaID int) ([]byte, error)
}

var _ OrderServiceInterface = (*OrderService)(nil)
