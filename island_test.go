package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIslandSingleExitRule(t *testing.T) {
	g, err := LoadPuzzle("3___\n____\n____\n", "")
	assert.NoError(t, err)
	// (2,0) is white but unattached to the (0,0) region (nothing
	// connects them); blacking its only other orthogonal neighbor
	// leaves exactly one unknown exit, (2,1).
	g.setWhite(Coord{2, 0})
	g.setBlack(Coord{1, 0})
	g.rebuild()

	var isl *Island
	for _, i := range g.islands {
		isl = i
	}
	assert.NotNil(t, isl)
	border := g.islandUnknownBorder(isl)
	assert.Equal(t, []Coord{{2, 1}}, border)

	status := g.simpleSolveIsland(isl)
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{2, 1}).rawIsWhite())
}
