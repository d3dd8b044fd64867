package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"comanda-pos/order-svc/internal/domain"
	"comanda-pos/pricing"
)

var (
	ErrComandaInvalida = errors.New("invalid comanda payload")
	ErrComandaActiva   = errors.New("mesa already has an active comanda")
	ErrComandaNotFound = errors.New("comanda not found")
)

type OrderService struct {
	repo      ComandaRepository
	publisher SalePublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo ComandaRepository, publisher SalePublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Create registers a comanda. The total is always recomputed server-side
// with the pricing engine; whatever total the client carried is discarded.
func (s *OrderService) Create(ctx context.Context, comanda *domain.Comanda) error {
	if len(comanda.Items) == 0 {
		return ErrComandaInvalida
	}
	if (comanda.MesaID == 0) == (comanda.MesaFamiliarID == 0) {
		return ErrComandaInvalida
	}
	for _, item := range comanda.Items {
		if item.PlatoID <= 0 || item.Cantidad < 1 || item.PrecioUnitario < 0 {
			return ErrComandaInvalida
		}
	}

	if comanda.MesaID != 0 {
		if _, err := s.repo.GetComandaByMesa(comanda.MesaID); err == nil {
			return ErrComandaActiva
		}
	} else {
		if _, err := s.repo.GetComandaByFamiliar(comanda.MesaFamiliarID); err == nil {
			return ErrComandaActiva
		}
	}

	comanda.Total = pricing.Price(comanda.OrderLines()).Total
	return s.repo.CreateComanda(comanda)
}

func (s *OrderService) Get(id int) (*domain.Comanda, error) {
	return s.repo.GetComanda(id)
}

func (s *OrderService) GetByMesa(mesaID int) (*domain.Comanda, error) {
	return s.repo.GetComandaByMesa(mesaID)
}

func (s *OrderService) GetByFamiliar(familiarID int) (*domain.Comanda, error) {
	return s.repo.GetComandaByFamiliar(familiarID)
}

func (s *OrderService) Delete(id int) error {
	rows, err := s.repo.DeleteComanda(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrComandaNotFound
	}
	return nil
}

// ConfirmarPago closes out a comanda: it prices the final bill with the same
// engine that produced the live total, persists the boleta, attaches a QR
// and announces the sale. The comanda row stays until the caller deletes it,
// mirroring the pay-then-clear flow at the till.
func (s *OrderService) ConfirmarPago(ctx context.Context, comandaID int) (*domain.Boleta, error) {
	comanda, err := s.repo.GetComanda(comandaID)
	if err != nil {
		return nil, ErrComandaNotFound
	}

	receipt := pricing.Price(comanda.OrderLines())
	boleta := &domain.Boleta{
		ComandaID: comandaID,
		Receipt:   receipt,
		Texto:     pricing.RenderText(receipt),
	}
	if err := s.repo.SaveBoleta(boleta); err != nil {
		return nil, fmt.Errorf("failed to save boleta: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(comandaID); err == nil {
			_ = s.repo.SaveBoletaQR(comandaID, qr)
		}
	}
	boleta.QRCode = fmt.Sprintf("/api/boleta/%d/qrcode", comandaID)

	if s.publisher != nil {
		platos := make([]domain.SalePlato, 0, len(comanda.Items))
		for _, item := range comanda.Items {
			platos = append(platos, domain.SalePlato{
				Nombre:    item.Nombre,
				Categoria: string(item.Categoria),
				Cantidad:  item.Cantidad,
			})
		}
		// The boleta is already persisted; a broker hiccup must not fail
		// the payment, so the error is only logged.
		if err := s.publisher.PublishSale(ctx, domain.SaleMessage{
			Type:   domain.SaleMessageType,
			Monto:  receipt.Total,
			Fecha:  time.Now(),
			Platos: platos,
		}); err != nil {
			log.Printf("Failed to publish sale for comanda %d: %v", comandaID, err)
		}
	}

	return boleta, nil
}

func (s *OrderService) GetBoleta(comandaID int) (*domain.Boleta, error) {
	return s.repo.GetBoleta(comandaID)
}

func (s *OrderService) GetBoletaQR(comandaID int) ([]byte, error) {
	qr, err := s.repo.GetBoletaQR(comandaID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(comandaID); err == nil {
			_ = s.repo.SaveBoletaQR(comandaID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}
