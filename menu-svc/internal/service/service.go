package service

import (
	"errors"

	"comanda-pos/menu-svc/internal/domain"
	"comanda-pos/pricing"
)

var (
	ErrCategoriaInvalida = errors.New("unknown plato categoria")
	ErrPlatoProtegido    = errors.New("plato is part of the fixed menu and cannot be removed")
	ErrPlatoNotFound     = errors.New("plato not found")
)

// platosProtegidos are the second courses that make up the house Menú
// Clásico rotation. They always sell at the Classic Menu price and stay on
// the menu permanently.
var platosProtegidos = map[string]bool{
	"Arroz con Pollo":    true,
	"Ají de Gallina":     true,
	"Seco de Res":        true,
	"Tallarín Saltado":   true,
	"Estofado de Pollo":  true,
}

type PlatoRepository interface {
	CreatePlato(plato *domain.Plato) error
	ListPlatos() ([]domain.Plato, error)
	ListPlatosByCategoria(categoria pricing.Category) ([]domain.Plato, error)
	GetPlato(id int) (*domain.Plato, error)
	UpdatePlato(plato *domain.Plato) error
	DeletePlato(id int) (int64, error)
}

type MenuServiceInterface interface {
	Create(plato *domain.Plato) error
	List(categoria pricing.Category) ([]domain.Plato, error)
	Get(id int) (*domain.Plato, error)
	Update(plato *domain.Plato) error
	Delete(id int) error
}

var _ MenuServiceInterface = (*MenuService)(nil)

type MenuService struct {
	repo PlatoRepository
}

func NewMenuService(repo PlatoRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Create(plato *domain.Plato) error {
	if !domain.ValidCategoria(plato.Categoria) {
		return ErrCategoriaInvalida
	}
	if platosProtegidos[plato.Nombre] {
		plato.Precio = pricing.ClassicMenuPrice
	}
	return s.repo.CreatePlato(plato)
}

func (s *MenuService) List(categoria pricing.Category) ([]domain.Plato, error) {
	if categoria == "" {
		return s.repo.ListPlatos()
	}
	if !domain.ValidCategoria(categoria) {
		return nil, ErrCategoriaInvalida
	}
	return s.repo.ListPlatosByCategoria(categoria)
}

func (s *MenuService) Get(id int) (*domain.Plato, error) {
	return s.repo.GetPlato(id)
}

func (s *MenuService) Update(plato *domain.Plato) error {
	if !domain.ValidCategoria(plato.Categoria) {
		return ErrCategoriaInvalida
	}
	if platosProtegidos[plato.Nombre] {
		plato.Precio = pricing.ClassicMenuPrice
	}
	return s.repo.UpdatePlato(plato)
}

func (s *MenuService) Delete(id int) error {
	plato, err := s.repo.GetPlato(id)
	if err != nil {
		return ErrPlatoNotFound
	}
	if platosProtegidos[plato.Nombre] {
		return ErrPlatoProtegido
	}
	rows, err := s.repo.DeletePlato(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlatoNotFound
	}
	return nil
}

// Protegido reports whether a plato is pinned to the fixed menu.
func Protegido(nombre string) bool {
	return platosProtegidos[nombre]
}
