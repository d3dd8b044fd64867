package tests

import (
	"context"
	"errors"
	"testing"

	"comanda-pos/table-svc/internal/domain"
	"comanda-pos/table-svc/internal/mocks"
	"comanda-pos/table-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTableService_UpdateMesaEstado(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mesaID        int
		estado        string
		prepareMocks  func(repo *mocks.TableRepository, cache *mocks.EstadoCache)
		expectedError error
	}{
		{
			name:   "success_marks_mesa_preparando",
			mesaID: 3,
			estado: domain.EstadoPreparando,
			prepareMocks: func(repo *mocks.TableRepository, cache *mocks.EstadoCache) {
				repo.On("UpdateMesaEstado", 3, domain.EstadoPreparando).Return(int64(1), nil).Once()
				cache.On("MesaKey", 3).Return("mesa:estado:3").Once()
				cache.On("SetEstado", ctx, "mesa:estado:3", domain.EstadoPreparando).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_unknown_estado",
			mesaID:        3,
			estado:        "Reservada",
			prepareMocks:  func(repo *mocks.TableRepository, cache *mocks.EstadoCache) {},
			expectedError: service.ErrEstadoInvalido,
		},
		{
			name:   "error_mesa_not_found",
			mesaID: 99,
			estado: domain.EstadoOcupada,
			prepareMocks: func(repo *mocks.TableRepository, cache *mocks.EstadoCache) {
				repo.On("UpdateMesaEstado", 99, domain.EstadoOcupada).Return(int64(0), nil).Once()
			},
			expectedError: service.ErrMesaNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTableRepository(t)
			cache := mocks.NewEstadoCache(t)
			svc := service.NewTableService(repo, cache)

			testCase.prepareMocks(repo, cache)

			err := svc.UpdateMesaEstado(ctx, testCase.mesaID, testCase.estado)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestTableService_ListMesasOverlaysCachedEstado(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTableRepository(t)
	cache := mocks.NewEstadoCache(t)
	svc := service.NewTableService(repo, cache)

	repo.On("ListMesas").Return([]domain.Mesa{
		{ID: 1, Numero: 1, Estado: domain.EstadoDisponible},
		{ID: 2, Numero: 2, Estado: domain.EstadoDisponible},
	}, nil).Once()
	cache.On("MesaKey", 1).Return("mesa:estado:1").Once()
	cache.On("MesaKey", 2).Return("mesa:estado:2").Once()
	// Mesa 1 has a fresher estado in the mirror; mesa 2 has no cache entry.
	cache.On("GetEstado", ctx, "mesa:estado:1").Return(domain.EstadoOcupada, nil).Once()
	cache.On("GetEstado", ctx, "mesa:estado:2").Return("", errors.New("redis: nil")).Once()

	mesas, err := svc.ListMesas(ctx)

	assert.NoError(t, err)
	assert.Equal(t, domain.EstadoOcupada, mesas[0].Estado)
	assert.Equal(t, domain.EstadoDisponible, mesas[1].Estado)
}

func TestTableService_CreateFamiliar(t *testing.T) {
	ctx := context.Background()

	t.Run("error_needs_two_mesas", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		cache := mocks.NewEstadoCache(t)
		svc := service.NewTableService(repo, cache)

		_, err := svc.CreateFamiliar(ctx, "Mesa Familiar #1", []int{1})
		assert.ErrorIs(t, err, service.ErrGrupoMuyPequeno)
	})

	t.Run("error_member_not_disponible", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		cache := mocks.NewEstadoCache(t)
		svc := service.NewTableService(repo, cache)

		repo.On("GetMesa", 1).Return(&domain.Mesa{ID: 1, Estado: domain.EstadoDisponible}, nil).Once()
		repo.On("GetMesa", 2).Return(&domain.Mesa{ID: 2, Estado: domain.EstadoOcupada}, nil).Once()

		_, err := svc.CreateFamiliar(ctx, "Mesa Familiar #1", []int{1, 2})
		assert.ErrorIs(t, err, service.ErrMesaNoDisponible)
	})

	t.Run("success_merges_two_mesas", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		cache := mocks.NewEstadoCache(t)
		svc := service.NewTableService(repo, cache)

		repo.On("GetMesa", 1).Return(&domain.Mesa{ID: 1, Estado: domain.EstadoDisponible}, nil).Once()
		repo.On("GetMesa", 2).Return(&domain.Mesa{ID: 2, Estado: domain.EstadoDisponible}, nil).Once()
		repo.On("CreateFamiliar", mock.Anything, []int{1, 2}).
			Run(func(args mock.Arguments) {
				args.Get(0).(*domain.MesaFamiliar).ID = 7
			}).
			Return(nil).Once()
		cache.On("MesaKey", 1).Return("mesa:estado:1").Once()
		cache.On("MesaKey", 2).Return("mesa:estado:2").Once()
		cache.On("SetEstado", ctx, "mesa:estado:1", domain.EstadoDisponible).Return(nil).Once()
		cache.On("SetEstado", ctx, "mesa:estado:2", domain.EstadoDisponible).Return(nil).Once()
		repo.On("GetFamiliar", 7).Return(&domain.MesaFamiliar{
			ID: 7, Nombre: "Mesa Familiar #1", Estado: domain.EstadoDisponible,
			Mesas: []domain.Mesa{{ID: 1}, {ID: 2}},
		}, nil).Once()

		familiar, err := svc.CreateFamiliar(ctx, "Mesa Familiar #1", []int{1, 2})

		assert.NoError(t, err)
		assert.Equal(t, 7, familiar.ID)
		assert.Len(t, familiar.Mesas, 2)
	})
}

func TestTableService_DeleteFamiliarReleasesMembers(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTableRepository(t)
	cache := mocks.NewEstadoCache(t)
	svc := service.NewTableService(repo, cache)

	repo.On("GetFamiliar", 7).Return(&domain.MesaFamiliar{
		ID: 7, Estado: domain.EstadoOcupada,
		Mesas: []domain.Mesa{{ID: 1}, {ID: 2}},
	}, nil).Once()
	repo.On("UpdateMesaEstado", 1, domain.EstadoDisponible).Return(int64(1), nil).Once()
	repo.On("UpdateMesaEstado", 2, domain.EstadoDisponible).Return(int64(1), nil).Once()
	cache.On("MesaKey", 1).Return("mesa:estado:1").Once()
	cache.On("MesaKey", 2).Return("mesa:estado:2").Once()
	cache.On("SetEstado", ctx, "mesa:estado:1", domain.EstadoDisponible).Return(nil).Once()
	cache.On("SetEstado", ctx, "mesa:estado:2", domain.EstadoDisponible).Return(nil).Once()
	repo.On("DeleteFamiliar", 7).Return(int64(1), nil).Once()

	err := svc.DeleteFamiliar(ctx, 7)
	assert.NoError(t, err)
}

func TestTableService_DeleteFamiliarNotFound(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTableRepository(t)
	cache := mocks.NewEstadoCache(t)
	svc := service.NewTableService(repo, cache)

	repo.On("GetFamiliar", 99).Return(nil, errors.New("sql: no rows in result set")).Once()

	err := svc.DeleteFamiliar(ctx, 99)
	assert.ErrorIs(t, err, service.ErrFamiliarNotFound)
}
