package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHypothesisPushPopIsIdentity(t *testing.T) {
	g, err := LoadPuzzle("1__\n___\n___\n", "")
	assert.NoError(t, err)

	before := snapshotValues(g)

	g.pushHypothesis([]Coord{{0, 1}}, []Coord{{1, 1}})
	assert.True(t, g.isBlack(Coord{0, 1}))
	assert.True(t, g.isWhite(Coord{1, 1}))
	g.popHypothesis()

	assert.Equal(t, before, snapshotValues(g))
}

func TestHypothesisDoesNotMutateStoredValue(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)

	g.pushHypothesis([]Coord{{0, 1}}, nil)
	assert.Equal(t, Unknown, g.cellAt(Coord{0, 1}).value)
	assert.True(t, g.isBlack(Coord{0, 1}))
	g.popHypothesis()
	assert.True(t, g.isUnknown(Coord{0, 1}))
}

func snapshotValues(g *Grid) [][]CellValue {
	out := make([][]CellValue, g.rows)
	for r := range out {
		out[r] = make([]CellValue, g.cols)
		for c := range out[r] {
			out[r][c] = g.cellAt(Coord{r, c}).value
		}
	}
	return out
}
