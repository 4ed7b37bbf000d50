package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetColorRejectsNumberCell(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.Equal(t, statusNoChange, g.setBlack(Coord{0, 0}))
	assert.True(t, g.cellAt(Coord{0, 0}).rawIsNumber())
}

func TestSetColorContradictsExisting(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.Equal(t, statusChanged, g.setBlack(Coord{0, 1}))
	assert.Equal(t, statusContradict, g.setWhite(Coord{0, 1}))
}

func TestSetColorIdempotentSameValue(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.Equal(t, statusChanged, g.setBlack(Coord{0, 1}))
	assert.Equal(t, statusNoChange, g.setBlack(Coord{0, 1}))
}

func TestUserSetCellErrors(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)

	assert.ErrorIs(t, g.SetCellBlack(Coord{0, 0}), ErrNumberImmutable)
	assert.ErrorIs(t, g.SetCellBlack(Coord{-1, 0}), ErrBadCoord)

	assert.NoError(t, g.SetCellBlack(Coord{0, 1}))
	assert.ErrorIs(t, g.SetCellWhite(Coord{0, 1}), ErrCellNotUnknown)
}

func TestInBounds(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.True(t, g.inBounds(Coord{0, 0}))
	assert.False(t, g.inBounds(Coord{2, 0}))
	assert.False(t, g.inBounds(Coord{0, -1}))
}
