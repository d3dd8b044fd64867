package tests

import (
	"testing"

	"comanda-pos/menu-svc/internal/domain"
	"comanda-pos/menu-svc/internal/mocks"
	"comanda-pos/menu-svc/internal/service"
	"comanda-pos/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         *domain.Plato
		wantPrecio    float64
		expectedError error
	}{
		{
			name:       "regular plato keeps its price",
			input:      &domain.Plato{Nombre: "Ceviche", Categoria: pricing.CategoryMarinos, Precio: 22},
			wantPrecio: 22,
		},
		{
			name:       "protected plato pinned to classic menu price",
			input:      &domain.Plato{Nombre: "Ají de Gallina", Categoria: pricing.CategorySegundo, Precio: 25},
			wantPrecio: pricing.ClassicMenuPrice,
		},
		{
			name:          "unknown categoria rejected",
			input:         &domain.Plato{Nombre: "Postre", Categoria: pricing.Category("Postres"), Precio: 8},
			expectedError: service.ErrCategoriaInvalida,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.PlatoRepository)
			svc := service.NewMenuService(mockRepo)

			if testCase.expectedError == nil {
				mockRepo.On("CreatePlato", testCase.input).Return(nil).Once()
			}

			err := svc.Create(testCase.input)

			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, testCase.wantPrecio, testCase.input.Precio)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_List(t *testing.T) {
	t.Run("all platos", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		expected := []domain.Plato{{ID: 1, Nombre: "Ceviche"}}
		mockRepo.On("ListPlatos").Return(expected, nil).Once()

		platos, err := svc.List("")
		assert.NoError(t, err)
		assert.Equal(t, expected, platos)
		mockRepo.AssertExpectations(t)
	})

	t.Run("filtered by categoria", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		expected := []domain.Plato{{ID: 2, Nombre: "Tequeños", Categoria: pricing.CategoryEntrada}}
		mockRepo.On("ListPlatosByCategoria", pricing.CategoryEntrada).Return(expected, nil).Once()

		platos, err := svc.List(pricing.CategoryEntrada)
		assert.NoError(t, err)
		assert.Equal(t, expected, platos)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown categoria", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		_, err := svc.List(pricing.Category("Postres"))
		assert.ErrorIs(t, err, service.ErrCategoriaInvalida)
	})
}

func TestMenuService_Delete(t *testing.T) {
	t.Run("protected plato rejected", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		mockRepo.On("GetPlato", 5).Return(&domain.Plato{
			ID: 5, Nombre: "Seco de Res", Categoria: pricing.CategorySegundo,
		}, nil).Once()

		err := svc.Delete(5)
		assert.ErrorIs(t, err, service.ErrPlatoProtegido)
		mockRepo.AssertExpectations(t)
	})

	t.Run("regular plato removed", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		mockRepo.On("GetPlato", 6).Return(&domain.Plato{
			ID: 6, Nombre: "Ceviche", Categoria: pricing.CategoryMarinos,
		}, nil).Once()
		mockRepo.On("DeletePlato", 6).Return(int64(1), nil).Once()

		err := svc.Delete(6)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing plato", func(t *testing.T) {
		mockRepo := new(mocks.PlatoRepository)
		svc := service.NewMenuService(mockRepo)

		mockRepo.On("GetPlato", 7).Return(nil, assert.AnError).Once()

		err := svc.Delete(7)
		assert.ErrorIs(t, err, service.ErrPlatoNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestMenuService_UpdatePinsProtectedPrice(t *testing.T) {
	mockRepo := new(mocks.PlatoRepository)
	svc := service.NewMenuService(mockRepo)

	plato := &domain.Plato{ID: 5, Nombre: "Arroz con Pollo", Categoria: pricing.CategorySegundo, Precio: 99}
	mockRepo.On("UpdatePlato", mock.Anything).Return(nil).Once()

	err := svc.Update(plato)

	assert.NoError(t, err)
	assert.Equal(t, pricing.ClassicMenuPrice, plato.Precio)
	mockRepo.AssertExpectations(t)
}
