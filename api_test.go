package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayUnplayRestoresState(t *testing.T) {
	g, err := LoadPuzzle("2_\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	sols, err := g.GetRegionSolutions(reg.id, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, sols)

	before := snapshotValues(g)
	g.PlaySolution(sols[0])
	assert.NoError(t, g.UnplaySolution())
	assert.Equal(t, before, snapshotValues(g))
}

func TestCommitPromotesOverlay(t *testing.T) {
	g, err := LoadPuzzle("2_\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	sols, err := g.GetRegionSolutions(reg.id, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, sols)

	g.PlaySolution(sols[0])
	assert.NoError(t, g.Commit())
	assert.True(t, g.atTopLevel())

	for _, c := range sols[0].icoords {
		if !g.cellAt(c).rawIsNumber() {
			assert.True(t, g.cellAt(c).rawIsWhite())
		}
	}
}

func TestUnplaySolutionWithoutHypothesisErrors(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.ErrorIs(t, g.UnplaySolution(), ErrNoHypothesis)
}

func TestResetRestoresLoadState(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	before := snapshotValues(g)

	assert.NoError(t, g.SetCellBlack(Coord{0, 1}))
	g.Reset()

	assert.Equal(t, before, snapshotValues(g))
}
