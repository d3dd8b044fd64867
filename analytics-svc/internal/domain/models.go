package domain

import "time"

type Venta struct {
	ID     int          `json:"id"`
	Monto  float64      `json:"monto"`
	Fecha  time.Time    `json:"fecha"`
	Platos []VentaPlato `json:"platos"`
}

type VentaPlato struct {
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
	Cantidad  int    `json:"cantidad"`
}

// VentasHoy is the payload the admin dashboard polls through the day.
type VentasHoy struct {
	Fecha  string  `json:"fecha"`
	Total  float64 `json:"total"`
	Ventas []Venta `json:"ventas"`
}

type DailySummary struct {
	Dia   string  `json:"dia"`
	Monto float64 `json:"monto"`
}

type PlatoRank struct {
	Nombre   string  `json:"nombre"`
	Cantidad float64 `json:"cantidad"`
}
