// Package pricing computes the bill for a comanda. Qualifying dish units are
// assembled into fixed-price menus (Menú Ejecutivo, Menú Clásico) before the
// rest is billed item by item. The same engine backs the live order total and
// the printed boleta, so both always agree.
package pricing

import "math"

// Category classifies a dish. Only Entrada, Segundo and Ejecutivo take part
// in menu formation; every other category is billed at its listed price.
type Category string

const (
	CategoryEntrada   Category = "Entrada"
	CategorySegundo   Category = "Segundo"
	CategoryEjecutivo Category = "Ejecutivo"
	CategoryCaldos    Category = "Caldos"
	CategoryCarta     Category = "Platos a la Carta"
	CategoryMarinos   Category = "Platos Marinos"
	CategoryBebida    Category = "Bebida"
)

// Menu names and their flat promotional prices. A menu is billed at its flat
// price regardless of what the consumed dishes cost individually.
const (
	ExecutiveMenuName = "Executive Menu"
	ClassicMenuName   = "Classic Menu"

	ExecutiveMenuPrice = 18.0
	ClassicMenuPrice   = 14.0
)

// OrderLine is one dish entry of a comanda as the waiter recorded it.
type OrderLine struct {
	ItemID    int      `json:"item_id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unit_price"`
	Quantity  int      `json:"quantity"`
	Category  Category `json:"category"`
	Note      string   `json:"note,omitempty"`
}

// ComboLine is one formed menu on the bill.
type ComboLine struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// RemainderLine groups the units of one dish that no menu consumed.
type RemainderLine struct {
	ItemID    int     `json:"item_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Result is the priced bill: menus first, leftover items grouped by dish,
// and the grand total.
type Result struct {
	Combos    []ComboLine     `json:"combos"`
	Remainder []RemainderLine `json:"items"`
	Total     float64         `json:"total"`
}

// unit is a single expanded dish unit, internal to the pass.
type unit struct {
	itemID    int
	name      string
	unitPrice float64
	category  Category
}

// Price bills a comanda. The pass is deterministic: lines are expanded into
// units in input order, Executive Menus (Entrada + Ejecutivo) form before
// Classic Menus (leftover Entrada + Segundo), and menus consume the
// first-encountered units of each category. Leftover units are grouped by
// dish id in first-seen order. The input is never modified.
//
// Callers own input hygiene: quantities below 1 contribute no units and
// negative prices flow through as-is.
func Price(lines []OrderLine) Result {
	var units []unit
	for _, line := range lines {
		for i := 0; i < line.Quantity; i++ {
			units = append(units, unit{
				itemID:    line.ItemID,
				name:      line.Name,
				unitPrice: line.UnitPrice,
				category:  line.Category,
			})
		}
	}

	var entradas, segundos, ejecutivos int
	for _, u := range units {
		switch u.category {
		case CategoryEntrada:
			entradas++
		case CategorySegundo:
			segundos++
		case CategoryEjecutivo:
			ejecutivos++
		}
	}

	result := Result{Combos: []ComboLine{}, Remainder: []RemainderLine{}}

	var entradasUsadas, segundosUsados, ejecutivosUsados int

	// Menú Ejecutivo first: it is the pricier menu, so entradas go to it
	// before the Clásico sees them. The order is fixed policy.
	if n := min(entradas, ejecutivos); n > 0 {
		result.Combos = append(result.Combos, ComboLine{
			Name:      ExecutiveMenuName,
			Count:     n,
			UnitPrice: ExecutiveMenuPrice,
			Subtotal:  round2(float64(n) * ExecutiveMenuPrice),
		})
		entradasUsadas += n
		ejecutivosUsados += n
	}

	if n := min(entradas-entradasUsadas, segundos); n > 0 {
		result.Combos = append(result.Combos, ComboLine{
			Name:      ClassicMenuName,
			Count:     n,
			UnitPrice: ClassicMenuPrice,
			Subtotal:  round2(float64(n) * ClassicMenuPrice),
		})
		entradasUsadas += n
		segundosUsados += n
	}

	// Walk units in input order, skipping the ones the menus consumed.
	// Consuming from the front keeps remainder grouping deterministic.
	grouped := map[int]*RemainderLine{}
	var order []int
	for _, u := range units {
		switch {
		case u.category == CategoryEntrada && entradasUsadas > 0:
			entradasUsadas--
			continue
		case u.category == CategorySegundo && segundosUsados > 0:
			segundosUsados--
			continue
		case u.category == CategoryEjecutivo && ejecutivosUsados > 0:
			ejecutivosUsados--
			continue
		}

		if line, ok := grouped[u.itemID]; ok {
			line.Count++
		} else {
			grouped[u.itemID] = &RemainderLine{
				ItemID:    u.itemID,
				Name:      u.name,
				Count:     1,
				UnitPrice: u.unitPrice,
			}
			order = append(order, u.itemID)
		}
	}

	var total float64
	for _, c := range result.Combos {
		total += c.Subtotal
	}
	for _, id := range order {
		line := grouped[id]
		line.Subtotal = round2(float64(line.Count) * line.UnitPrice)
		total += line.Subtotal
		result.Remainder = append(result.Remainder, *line)
	}
	result.Total = round2(total)

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
