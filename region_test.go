package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurroundCompleteRule(t *testing.T) {
	g, err := LoadPuzzle("1__\n___\n___\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	assert.True(t, reg.complete())

	status := g.surroundComplete(reg)
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{0, 1}).rawIsBlack())
	assert.True(t, g.cellAt(Coord{1, 0}).rawIsBlack())
}

func TestSingleExitRegionRule(t *testing.T) {
	g, err := LoadPuzzle("2*\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	status := g.singleExitRegion(reg)
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{1, 0}).rawIsWhite())
}

func TestCornerForcingTwoLeftRule(t *testing.T) {
	// region coords {(0,0),(0,1),(1,1)} (value 5, remaining 2) borders
	// exactly two Unknown cells, (2,1) and (1,2), which touch only at a
	// corner; the opposite corners of that 2x2 block are (1,1)
	// (already region) and (2,2) (still Unknown).
	g, err := LoadPuzzle("5.*\n*._\n___\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	assert.Equal(t, 2, reg.remaining())

	status := g.cornerForcingTwoLeft(reg)
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{2, 2}).rawIsBlack())
}

func TestTwoAwayRuleForcesIntermediateBlack(t *testing.T) {
	g, err := LoadPuzzle("1_1\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var regs []*Region
	for _, r := range g.regions {
		regs = append(regs, r)
	}
	assert.Len(t, regs, 2)
	status := statusNoChange
	for _, r := range regs {
		status = status.merge(g.twoAwayRule(r))
	}
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{0, 1}).rawIsBlack())
}
