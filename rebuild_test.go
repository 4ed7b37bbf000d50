package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebuildPartitionsPoolsIslandsGaps(t *testing.T) {
	// 3x3: a 1 at (0,0), a 1 at (2,2), rest unknown.
	g, err := LoadPuzzle("1__\n___\n__1\n", "")
	assert.NoError(t, err)

	g.setBlack(Coord{0, 1})
	g.setBlack(Coord{1, 0})
	g.rebuild()

	assert.Len(t, g.pools, 2)
	assert.Len(t, g.islands, 0)
	assert.True(t, len(g.gaps) >= 1)
}

func TestRebuildIsNoopWhenNotDirty(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()
	assert.False(t, g.dirty)
	poolsBefore := g.pools
	g.rebuild()
	assert.Equal(t, poolsBefore, g.pools)
}

func TestRegionCoordsRebuildFromNumberCell(t *testing.T) {
	g, err := LoadPuzzle("2_\n__\n", "")
	assert.NoError(t, err)
	g.setWhite(Coord{0, 1})
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	assert.Len(t, reg.coords, 2)
	assert.True(t, reg.coords[Coord{0, 1}])
}
