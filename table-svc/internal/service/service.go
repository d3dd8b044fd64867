package service

import (
	"context"
	"errors"
	"fmt"

	"comanda-pos/table-svc/internal/domain"
)

var (
	ErrEstadoInvalido    = errors.New("unknown mesa estado")
	ErrMesaNoDisponible  = errors.New("mesa is not available for grouping")
	ErrGrupoMuyPequeno   = errors.New("a family group needs at least two mesas")
	ErrMesaNotFound      = errors.New("mesa not found")
	ErrFamiliarNotFound  = errors.New("mesa familiar not found")
)

type TableService struct {
	repo  TableRepository
	cache EstadoCache
}

func NewTableService(repo TableRepository, cache EstadoCache) *TableService {
	return &TableService{repo: repo, cache: cache}
}

func (s *TableService) CreateMesa(ctx context.Context, mesa *domain.Mesa) error {
	if mesa.Estado == "" {
		mesa.Estado = domain.EstadoDisponible
	}
	if !domain.ValidEstado(mesa.Estado) {
		return ErrEstadoInvalido
	}
	if err := s.repo.CreateMesa(mesa); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.SetEstado(ctx, s.cache.MesaKey(mesa.ID), mesa.Estado)
	}
	return nil
}

// ListMesas serves the board. Postgres is the source of truth; the Redis
// mirror overlays fresher estados so the board stays current between polls.
func (s *TableService) ListMesas(ctx context.Context) ([]domain.Mesa, error) {
	mesas, err := s.repo.ListMesas()
	if err != nil {
		return nil, err
	}
	if s.cache == nil {
		return mesas, nil
	}
	for i := range mesas {
		estado, err := s.cache.GetEstado(ctx, s.cache.MesaKey(mesas[i].ID))
		if err == nil && domain.ValidEstado(estado) {
			mesas[i].Estado = estado
		}
	}
	return mesas, nil
}

func (s *TableService) GetMesa(ctx context.Context, id int) (*domain.Mesa, error) {
	mesa, err := s.repo.GetMesa(id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if estado, err := s.cache.GetEstado(ctx, s.cache.MesaKey(id)); err == nil && domain.ValidEstado(estado) {
			mesa.Estado = estado
		}
	}
	return mesa, nil
}

func (s *TableService) UpdateMesaEstado(ctx context.Context, id int, estado string) error {
	if !domain.ValidEstado(estado) {
		return ErrEstadoInvalido
	}
	rows, err := s.repo.UpdateMesaEstado(id, estado)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMesaNotFound
	}
	if s.cache != nil {
		_ = s.cache.SetEstado(ctx, s.cache.MesaKey(id), estado)
	}
	return nil
}

func (s *TableService) DeleteMesa(id int) (int64, error) {
	return s.repo.DeleteMesa(id)
}

// CreateFamiliar merges mesas into one group. Every member must currently be
// Disponible; the group starts Disponible and its members follow it.
func (s *TableService) CreateFamiliar(ctx context.Context, nombre string, mesaIDs []int) (*domain.MesaFamiliar, error) {
	if len(mesaIDs) < 2 {
		return nil, ErrGrupoMuyPequeno
	}
	for _, id := range mesaIDs {
		mesa, err := s.repo.GetMesa(id)
		if err != nil {
			return nil, fmt.Errorf("mesa %d: %w", id, ErrMesaNotFound)
		}
		if mesa.Estado != domain.EstadoDisponible {
			return nil, fmt.Errorf("mesa %d: %w", id, ErrMesaNoDisponible)
		}
	}

	familiar := &domain.MesaFamiliar{Nombre: nombre, Estado: domain.EstadoDisponible}
	if err := s.repo.CreateFamiliar(familiar, mesaIDs); err != nil {
		return nil, err
	}
	if s.cache != nil {
		for _, id := range mesaIDs {
			_ = s.cache.SetEstado(ctx, s.cache.MesaKey(id), familiar.Estado)
		}
	}
	return s.repo.GetFamiliar(familiar.ID)
}

func (s *TableService) ListFamiliares() ([]domain.MesaFamiliar, error) {
	return s.repo.ListFamiliares()
}

func (s *TableService) GetFamiliar(id int) (*domain.MesaFamiliar, error) {
	return s.repo.GetFamiliar(id)
}

func (s *TableService) UpdateFamiliar(ctx context.Context, id int, nombre, estado string) error {
	if !domain.ValidEstado(estado) {
		return ErrEstadoInvalido
	}
	familiar, err := s.repo.GetFamiliar(id)
	if err != nil {
		return ErrFamiliarNotFound
	}
	if nombre == "" {
		nombre = familiar.Nombre
	}
	rows, err := s.repo.UpdateFamiliar(id, nombre, estado)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFamiliarNotFound
	}
	// Member mesas mirror the group estado while grouped.
	for _, mesa := range familiar.Mesas {
		if _, err := s.repo.UpdateMesaEstado(mesa.ID, estado); err != nil {
			return err
		}
		if s.cache != nil {
			_ = s.cache.SetEstado(ctx, s.cache.MesaKey(mesa.ID), estado)
		}
	}
	return nil
}

// DeleteFamiliar splits the group: members return to Disponible before the
// group row goes away, so no mesa is left stranded in a stale estado.
func (s *TableService) DeleteFamiliar(ctx context.Context, id int) error {
	familiar, err := s.repo.GetFamiliar(id)
	if err != nil {
		return ErrFamiliarNotFound
	}
	for _, mesa := range familiar.Mesas {
		if _, err := s.repo.UpdateMesaEstado(mesa.ID, domain.EstadoDisponible); err != nil {
			return err
		}
		if s.cache != nil {
			_ = s.cache.SetEstado(ctx, s.cache.MesaKey(mesa.ID), domain.EstadoDisponible)
		}
	}
	rows, err := s.repo.DeleteFamiliar(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFamiliarNotFound
	}
	return nil
}
