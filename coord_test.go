package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordTouches(t *testing.T) {
	c := Coord{1, 1}
	assert.True(t, c.Touches(Coord{0, 1}))
	assert.True(t, c.Touches(Coord{1, 2}))
	assert.False(t, c.Touches(Coord{2, 2}))
	assert.False(t, c.Touches(Coord{1, 1}))
}

func TestCoordCornerTouches(t *testing.T) {
	c := Coord{1, 1}
	assert.True(t, c.CornerTouches(Coord{0, 0}))
	assert.True(t, c.CornerTouches(Coord{2, 2}))
	assert.False(t, c.CornerTouches(Coord{0, 1}))
}

func TestCoordDist(t *testing.T) {
	assert.Equal(t, 1, Coord{0, 0}.Dist(Coord{0, 0}))
	assert.Equal(t, 3, Coord{0, 0}.Dist(Coord{1, 1}))
}

func TestCoordLess(t *testing.T) {
	assert.True(t, Coord{0, 1}.Less(Coord{1, 0}))
	assert.True(t, Coord{0, 0}.Less(Coord{0, 1}))
	assert.False(t, Coord{0, 1}.Less(Coord{0, 1}))
}
