package nurikabe

import "strings"

// RenderGrid renders g's current top-level colors back into the
// puzzle text format (spec §6): Number cells as their digit/letter,
// White as '.', Black as '*', Unknown as '_'.
func RenderGrid(g *Grid) string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cellAt(Coord{r, c})
			b.WriteByte(valueToChar(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func valueToChar(c *Cell) byte {
	switch c.value {
	case Number:
		if c.num < 10 {
			return byte('0' + c.num)
		}
		return byte('A' + (c.num - 10))
	case White:
		return '.'
	case Black:
		return '*'
	default:
		return '_'
	}
}
