package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gravitas-games/gridstash/pkg/inventory"
)

const labels = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// renderGrid writes the grid row by row, one letter per item in list order,
// followed by a legend.
func renderGrid(w io.Writer, inv *inventory.Inventory) {
	fmt.Fprintf(w, "%s (%dx%d, %d items)\n", inv.ID, inv.Width(), inv.Height(), inv.Len())
	for y := 0; y < inv.Height(); y++ {
		var row strings.Builder
		for x := 0; x < inv.Width(); x++ {
			row.WriteByte(' ')
			row.WriteByte(label(inv.IndexAt(x, y)))
		}
		fmt.Fprintln(w, row.String())
	}
	for i, it := range inv.Items() {
		origin, _ := inv.Origin(it)
		fmt.Fprintf(w, "  %c %-10s x%-3d at (%d,%d)\n", label(i), it.Def.Name, it.Amount(), origin.X, origin.Y)
	}
}

func label(index int) byte {
	switch {
	case index < 0:
		return '.'
	case index < len(labels):
		return labels[index]
	default:
		return '#'
	}
}
