package service

import (
	"context"

	"comanda-pos/table-svc/internal/domain"
)

type TableRepository interface {
	CreateMesa(mesa *domain.Mesa) error
	ListMesas() ([]domain.Mesa, error)
	GetMesa(id int) (*domain.Mesa, error)
	UpdateMesaEstado(id int, estado string) (int64, error)
	DeleteMesa(id int) (int64, error)

	CreateFamiliar(familiar *domain.MesaFamiliar, mesaIDs []int) error
	ListFamiliares() ([]domain.MesaFamiliar, error)
	GetFamiliar(id int) (*domain.MesaFamiliar, error)
	UpdateFamiliar(id int, nombre, estado string) (int64, error)
	DeleteFamiliar(id int) (int64, error)
}

type EstadoCache interface {
	MesaKey(mesaID int) string
	GetEstado(ctx context.Context, key string) (string, error)
	SetEstado(ctx context.Context, key, estado string) error
}

type TableServiceInterface interface {
	CreateMesa(ctx context.Context, mesa *domain.Mesa) error
	ListMesas(ctx context.Context) ([]domain.Mesa, error)
	GetMesa(ctx context.Context, id int) (*domain.Mesa, error)
	UpdateMesaEstado(ctx context.Context, id int, estado string) error
	DeleteMesa(id int) (int64, error)

	CreateFamiliar(ctx context.Context, nombre string, mesaIDs []int) (*domain.MesaFamiliar, error)
	ListFamiliares() ([]domain.MesaFamiliar, error)
	GetFamiliar(id int) (*domain.MesaFamiliar, error)
	UpdateFamiliar(ctx context.Context, id int, nombre, estado string) error
	DeleteFamiliar(ctx context.Context, id int) error
}

var _ TableServiceInterface = (*TableService)(nil)
