package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckValidRejectsBlackSquare(t *testing.T) {
	g, err := LoadPuzzle("1___\n____\n", "")
	assert.NoError(t, err)
	g.setBlack(Coord{0, 1})
	g.setBlack(Coord{0, 2})
	g.setBlack(Coord{1, 1})
	g.setBlack(Coord{1, 2})
	assert.False(t, g.checkValid())
}

func TestCheckValidRejectsSurroundedWhite(t *testing.T) {
	g, err := LoadPuzzle("___\n___\n___\n", "")
	assert.NoError(t, err)
	g.setWhite(Coord{1, 1})
	g.setBlack(Coord{0, 1})
	g.setBlack(Coord{1, 0})
	g.setBlack(Coord{1, 2})
	g.setBlack(Coord{2, 1})
	assert.False(t, g.checkValid())
}

func TestCheckValidAllowsSoleOneSurroundedByBlack(t *testing.T) {
	g, err := LoadPuzzle("*1*\n***\n", "")
	assert.NoError(t, err)
	assert.True(t, g.checkValid())
}

func TestBoardFullyColored(t *testing.T) {
	g, err := LoadPuzzle("1*\n*1\n", "")
	assert.NoError(t, err)
	assert.True(t, g.boardFullyColored())

	g2, err := LoadPuzzle("1_\n*1\n", "")
	assert.NoError(t, err)
	assert.False(t, g2.boardFullyColored())
}
