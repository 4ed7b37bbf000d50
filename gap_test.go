package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllBorderBlackColorsWholeGap(t *testing.T) {
	g, err := LoadPuzzle("1**\n*__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var gap *Gap
	for _, gp := range g.gaps {
		gap = gp
	}
	assert.NotNil(t, gap)
	assert.True(t, g.allBorderBlack(gap))

	status := g.simpleSolveGap(gap)
	assert.Equal(t, statusChanged, status)
	assert.True(t, g.cellAt(Coord{1, 1}).rawIsBlack())
	assert.True(t, g.cellAt(Coord{1, 2}).rawIsBlack())
}

func TestCanConnectToRegionRespectsDistanceBound(t *testing.T) {
	g, err := LoadPuzzle("1____\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	// region value is 1: the number cell itself is already complete,
	// so nothing beyond it can ever connect.
	assert.False(t, g.canConnectToRegion(Coord{0, 3}, reg))
}

func TestBlackReachableFrom(t *testing.T) {
	g, err := LoadPuzzle("1_*\n___\n", "")
	assert.NoError(t, err)
	assert.True(t, g.blackReachableFrom(Coord{0, 1}))

	g2, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.False(t, g2.blackReachableFrom(Coord{0, 1}))
}
