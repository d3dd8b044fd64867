package domain

import (
	"time"

	"comanda-pos/pricing"
)

// Comanda is one order ticket. It belongs to either a single mesa or a mesa
// familiar, never both.
type Comanda struct {
	ID             int           `json:"id"`
	UsuarioID      int           `json:"usuarioId"`
	MesaID         int           `json:"mesaId,omitempty"`
	MesaFamiliarID int           `json:"mesaFamiliarId,omitempty"`
	Total          float64       `json:"total"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []ComandaItem `json:"items"`
}

type ComandaItem struct {
	ID             int              `json:"id"`
	PlatoID        int              `json:"platoId"`
	Nombre         string           `json:"nombre"`
	Categoria      pricing.Category `json:"categoria"`
	PrecioUnitario float64          `json:"precioUnitario"`
	Cantidad       int              `json:"cantidad"`
	Notas          string           `json:"notas,omitempty"`
}

// Boleta is the final receipt produced at payment time.
type Boleta struct {
	ComandaID int            `json:"comanda_id"`
	Receipt   pricing.Result `json:"receipt"`
	Texto     string         `json:"texto"`
	QRCode    string         `json:"qr_code,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// SaleMessage is published when a payment is confirmed; sales-svc consumes
// it to feed the admin dashboard.
type SaleMessage struct {
	Type   string      `json:"type"`
	Monto  float64     `json:"monto"`
	Fecha  time.Time   `json:"fecha"`
	Platos []SalePlato `json:"platos"`
}

type SalePlato struct {
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	Cantidad  int    `json:"cantidad"`
}

const SaleMessageType = "venta_confirmada"

// OrderLines adapts comanda items for the pricing engine.
func (c *Comanda) OrderLines() []pricing.OrderLine {
	lines := make([]pricing.OrderLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.OrderLine{
			ItemID:    item.PlatoID,
			Name:      item.Nombre,
			UnitPrice: item.PrecioUnitario,
			Quantity:  item.Cantidad,
			Category:  item.Categoria,
			Note:      item.Notas,
		})
	}
	return lines
}
