package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerateFindsCompletions(t *testing.T) {
	g, err := LoadPuzzle("2_\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	sols, err := g.enumerate(reg, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, sols)
	for _, s := range sols {
		assert.Len(t, s.icoords, 2)
	}
}

func TestEnumerateCachesUntilInvalidated(t *testing.T) {
	g, err := LoadPuzzle("2_\n__\n", "")
	assert.NoError(t, err)
	g.rebuild()

	var reg *Region
	for _, r := range g.regions {
		reg = r
	}
	sols1, err := g.enumerate(reg, 0)
	assert.NoError(t, err)
	assert.True(t, reg.solutionsOK)

	sols2, err := g.enumerate(reg, 0)
	assert.NoError(t, err)
	assert.Equal(t, len(sols1), len(sols2))
}

func TestSolutionIDsAreDistinct(t *testing.T) {
	a := newSolutionID()
	b := newSolutionID()
	assert.NotEqual(t, a, b)
}

func TestCoordSetHashOrderIndependent(t *testing.T) {
	h1 := coordSetHash([]Coord{{0, 0}, {0, 1}})
	h2 := coordSetHash([]Coord{{0, 1}, {0, 0}})
	assert.Equal(t, h1, h2)
}
