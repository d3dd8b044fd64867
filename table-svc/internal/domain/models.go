package domain

import "time"

const (
	EstadoDisponible = "Disponible"
	EstadoPreparando = "Preparando"
	EstadoOcupada    = "Ocupada"
)

type Mesa struct {
	ID        int       `json:"id"`
	Numero    int       `json:"numero"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// MesaFamiliar is a group of mesas pushed together for one party. The group
// carries one shared estado and one comanda; member mesas mirror its estado
// while the group exists.
type MesaFamiliar struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Estado    string    `json:"estado"`
	Mesas     []Mesa    `json:"mesas"`
	CreatedAt time.Time `json:"created_at"`
}

func ValidEstado(estado string) bool {
	switch estado {
	case EstadoDisponible, EstadoPreparando, EstadoOcupada:
		return true
	}
	return false
}
