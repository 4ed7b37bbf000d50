package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderGridRoundTrip(t *testing.T) {
	board := "1*1\n***\n1*1\n"
	g, err := LoadPuzzle(board, "")
	assert.NoError(t, err)
	assert.Equal(t, board, RenderGrid(g))
}

func TestRenderGridUnknownAndLetters(t *testing.T) {
	g, err := LoadPuzzle("A_\n__\n", "")
	assert.NoError(t, err)
	assert.Equal(t, "A_\n__\n", RenderGrid(g))
}
