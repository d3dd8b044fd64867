package domain

import "time"

// SaleMessage mirrors the payload order-svc publishes on the ventas topic.
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
