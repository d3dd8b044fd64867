package pricing

import (
	"fmt"
	"strings"
)

// RenderText formats a priced bill as plain boleta lines: menus first, then
// leftover items, then the grand total. One line per entry with count, unit
// price and subtotal in soles, which is what the thermal-printer adapter and
// the on-screen receipt both consume.
func RenderText(r Result) string {
	var b strings.Builder
	for _, c := range r.Combos {
		fmt.Fprintf(&b, "%s  x%d  S/ %.2f  S/ %.2f\n", c.Name, c.Count, c.UnitPrice, c.Subtotal)
	}
	for _, item := range r.Remainder {
		fmt.Fprintf(&b, "%s  x%d  S/ %.2f  S/ %.2f\n", item.Name, item.Count, item.UnitPrice, item.Subtotal)
	}
	fmt.Fprintf(&b, "Total a pagar: S/ %.2f\n", r.Total)
	return b.String()
}
