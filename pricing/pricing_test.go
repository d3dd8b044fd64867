package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_EmptyOrder(t *testing.T) {
	result := Price(nil)

	assert.Empty(t, result.Combos)
	assert.Empty(t, result.Remainder)
	assert.Equal(t, 0.0, result.Total)
}

func TestPrice_NoComboCategories(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 1, Name: "Caldo de Gallina", UnitPrice: 10, Quantity: 2, Category: CategoryCaldos},
	}

	result := Price(lines)

	assert.Empty(t, result.Combos)
	assert.Equal(t, []RemainderLine{
		{ItemID: 1, Name: "Caldo de Gallina", Count: 2, UnitPrice: 10, Subtotal: 20},
	}, result.Remainder)
	assert.Equal(t, 20.0, result.Total)
}

func TestPrice_ExecutiveMenuFlatPrice(t *testing.T) {
	// A starter at 5 plus an executive main at 20 bill as one Executive
	// Menu at 18, not 25. The flat menu price is the point.
	lines := []OrderLine{
		{ItemID: 1, Name: "Papa a la Huancaína", UnitPrice: 5, Quantity: 1, Category: CategoryEntrada},
		{ItemID: 2, Name: "Lomo Saltado Ejecutivo", UnitPrice: 20, Quantity: 1, Category: CategoryEjecutivo},
	}

	result := Price(lines)

	assert.Equal(t, []ComboLine{
		{Name: ExecutiveMenuName, Count: 1, UnitPrice: 18, Subtotal: 18},
	}, result.Combos)
	assert.Empty(t, result.Remainder)
	assert.Equal(t, 18.0, result.Total)
}

func TestPrice_ExecutiveBeforeClassic(t *testing.T) {
	// 3 entradas, 2 segundos, 2 ejecutivos: two Executive Menus form first
	// and take two entradas, leaving one entrada for a single Classic Menu.
	// One segundo survives to the remainder.
	lines := []OrderLine{
		{ItemID: 1, Name: "Tequeños", UnitPrice: 6, Quantity: 3, Category: CategoryEntrada},
		{ItemID: 2, Name: "Ají de Gallina", UnitPrice: 12, Quantity: 2, Category: CategorySegundo},
		{ItemID: 3, Name: "Bistec Ejecutivo", UnitPrice: 16, Quantity: 2, Category: CategoryEjecutivo},
	}

	result := Price(lines)

	assert.Equal(t, []ComboLine{
		{Name: ExecutiveMenuName, Count: 2, UnitPrice: 18, Subtotal: 36},
		{Name: ClassicMenuName, Count: 1, UnitPrice: 14, Subtotal: 14},
	}, result.Combos)
	assert.Equal(t, []RemainderLine{
		{ItemID: 2, Name: "Ají de Gallina", Count: 1, UnitPrice: 12, Subtotal: 12},
	}, result.Remainder)
	assert.Equal(t, 36.0+14.0+12.0, result.Total)
}

func TestPrice_NoStartersNoCombos(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 1, Name: "Seco de Res", UnitPrice: 13, Quantity: 5, Category: CategorySegundo},
		{ItemID: 2, Name: "Trucha Ejecutiva", UnitPrice: 17, Quantity: 3, Category: CategoryEjecutivo},
	}

	result := Price(lines)

	assert.Empty(t, result.Combos)
	assert.Equal(t, []RemainderLine{
		{ItemID: 1, Name: "Seco de Res", Count: 5, UnitPrice: 13, Subtotal: 65},
		{ItemID: 2, Name: "Trucha Ejecutiva", Count: 3, UnitPrice: 17, Subtotal: 51},
	}, result.Remainder)
	assert.Equal(t, 116.0, result.Total)
}

func TestPrice_LoneStarterFallsToRemainder(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 7, Name: "Causa", UnitPrice: 7.5, Quantity: 1, Category: CategoryEntrada},
	}

	result := Price(lines)

	assert.Empty(t, result.Combos)
	assert.Equal(t, []RemainderLine{
		{ItemID: 7, Name: "Causa", Count: 1, UnitPrice: 7.5, Subtotal: 7.5},
	}, result.Remainder)
	assert.Equal(t, 7.5, result.Total)
}

func TestPrice_FirstEncounteredStarterConsumed(t *testing.T) {
	// Two distinct entradas, one ejecutivo: the menu consumes the entrada
	// that was added first, so the second one survives on the bill.
	lines := []OrderLine{
		{ItemID: 1, Name: "Tequeños", UnitPrice: 6, Quantity: 1, Category: CategoryEntrada},
		{ItemID: 2, Name: "Causa", UnitPrice: 7, Quantity: 1, Category: CategoryEntrada},
		{ItemID: 3, Name: "Pollo Ejecutivo", UnitPrice: 15, Quantity: 1, Category: CategoryEjecutivo},
	}

	result := Price(lines)

	assert.Equal(t, []ComboLine{
		{Name: ExecutiveMenuName, Count: 1, UnitPrice: 18, Subtotal: 18},
	}, result.Combos)
	assert.Equal(t, []RemainderLine{
		{ItemID: 2, Name: "Causa", Count: 1, UnitPrice: 7, Subtotal: 7},
	}, result.Remainder)
	assert.Equal(t, 25.0, result.Total)
}

func TestPrice_SplitLinesMergeInRemainder(t *testing.T) {
	// The same dish added as two separate entries collapses into a single
	// remainder line with the summed count.
	lines := []OrderLine{
		{ItemID: 4, Name: "Chicha Morada", UnitPrice: 3.5, Quantity: 2, Category: CategoryBebida},
		{ItemID: 9, Name: "Ceviche", UnitPrice: 22, Quantity: 1, Category: CategoryMarinos},
		{ItemID: 4, Name: "Chicha Morada", UnitPrice: 3.5, Quantity: 1, Category: CategoryBebida},
	}

	result := Price(lines)

	assert.Equal(t, []RemainderLine{
		{ItemID: 4, Name: "Chicha Morada", Count: 3, UnitPrice: 3.5, Subtotal: 10.5},
		{ItemID: 9, Name: "Ceviche", Count: 1, UnitPrice: 22, Subtotal: 22},
	}, result.Remainder)
	assert.Equal(t, 32.5, result.Total)
}

func TestPrice_UnknownCategoryNeverCombos(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 1, Name: "Entrada", UnitPrice: 5, Quantity: 1, Category: CategoryEntrada},
		{ItemID: 2, Name: "Postre del Día", UnitPrice: 8, Quantity: 1, Category: Category("Postres")},
	}

	result := Price(lines)

	assert.Empty(t, result.Combos)
	assert.Len(t, result.Remainder, 2)
	assert.Equal(t, 13.0, result.Total)
}

func TestPrice_EveryUnitAccountedForOnce(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 1, Name: "Tequeños", UnitPrice: 6, Quantity: 4, Category: CategoryEntrada},
		{ItemID: 2, Name: "Ají de Gallina", UnitPrice: 12, Quantity: 3, Category: CategorySegundo},
		{ItemID: 3, Name: "Bistec Ejecutivo", UnitPrice: 16, Quantity: 2, Category: CategoryEjecutivo},
		{ItemID: 4, Name: "Chicha Morada", UnitPrice: 3.5, Quantity: 5, Category: CategoryBebida},
	}

	result := Price(lines)

	inputUnits := 0
	for _, line := range lines {
		inputUnits += line.Quantity
	}

	outputUnits := 0
	for _, c := range result.Combos {
		outputUnits += c.Count * 2 // each menu consumes a pair of units
	}
	for _, item := range result.Remainder {
		outputUnits += item.Count
	}
	assert.Equal(t, inputUnits, outputUnits)

	var expected float64
	for _, c := range result.Combos {
		expected += c.Subtotal
	}
	for _, item := range result.Remainder {
		expected += item.Subtotal
	}
	assert.InDelta(t, expected, result.Total, 0.001)
}

func TestPrice_DeterministicAndInputUntouched(t *testing.T) {
	lines := []OrderLine{
		{ItemID: 1, Name: "Tequeños", UnitPrice: 6, Quantity: 2, Category: CategoryEntrada},
		{ItemID: 2, Name: "Ají de Gallina", UnitPrice: 12, Quantity: 1, Category: CategorySegundo},
		{ItemID: 3, Name: "Caldo de Gallina", UnitPrice: 10, Quantity: 1, Category: CategoryCaldos, Note: "sin ají"},
	}
	snapshot := make([]OrderLine, len(lines))
	copy(snapshot, lines)

	first := Price(lines)
	second := Price(lines)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, lines)
}

func TestPrice_NotesNeverAffectTotal(t *testing.T) {
	with := Price([]OrderLine{
		{ItemID: 1, Name: "Seco de Res", UnitPrice: 13, Quantity: 1, Category: CategorySegundo, Note: "sin arroz"},
	})
	without := Price([]OrderLine{
		{ItemID: 1, Name: "Seco de Res", UnitPrice: 13, Quantity: 1, Category: CategorySegundo},
	})

	assert.Equal(t, without.Total, with.Total)
	assert.Equal(t, without.Remainder, with.Remainder)
}

func TestPrice_RoundsToCents(t *testing.T) {
	result := Price([]OrderLine{
		{ItemID: 1, Name: "Chicha Morada", UnitPrice: 3.33, Quantity: 3, Category: CategoryBebida},
	})

	assert.Equal(t, 9.99, result.Remainder[0].Subtotal)
	assert.Equal(t, 9.99, result.Total)
}

func TestRenderText(t *testing.T) {
	result := Price([]OrderLine{
		{ItemID: 1, Name: "Tequeños", UnitPrice: 6, Quantity: 1, Category: CategoryEntrada},
		{ItemID: 2, Name: "Bistec Ejecutivo", UnitPrice: 16, Quantity: 1, Category: CategoryEjecutivo},
		{ItemID: 3, Name: "Chicha Morada", UnitPrice: 3.5, Quantity: 2, Category: CategoryBebida},
	})

	text := RenderText(result)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, []string{
		"Executive Menu  x1  S/ 18.00  S/ 18.00",
		"Chicha Morada  x2  S/ 3.50  S/ 7.00",
		"Total a pagar: S/ 25.00",
	}, lines)
}
