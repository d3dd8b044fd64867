package domain

import (
	"time"

	"comanda-pos/pricing"
)

type Plato struct {
	ID        int              `json:"id"`
	Nombre    string           `json:"nombre"`
	Categoria pricing.Category `json:"categoria"`
	Precio    float64          `json:"precio"`
	CreatedAt time.Time        `json:"created_at"`
}

// Categorias is the fixed set the menu exposes; anything else is rejected at
// the edge so the pricing engine only ever sees known categories.
var Categorias = []pricing.Category{
	pricing.CategoryEntrada,
	pricing.CategorySegundo,
	pricing.CategoryEjecutivo,
	pricing.CategoryCaldos,
	pricing.CategoryCarta,
	pricing.CategoryMarinos,
	pricing.CategoryBebida,
}

func ValidCategoria(c pricing.Category) bool {
	for _, known := range Categorias {
		if known == c {
			return true
		}
	}
	return false
}
