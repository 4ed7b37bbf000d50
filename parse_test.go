package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharToValue(t *testing.T) {
	tests := []struct {
		ch    byte
		value CellValue
		num   int
	}{
		{'_', Unknown, 0},
		{'.', White, 0},
		{'*', Black, 0},
		{'5', Number, 5},
		{'9', Number, 9},
		{'A', Number, 10},
		{'Z', Number, 35},
	}
	for _, tt := range tests {
		v, n, err := charToValue(tt.ch)
		assert.NoError(t, err)
		assert.Equal(t, tt.value, v)
		assert.Equal(t, tt.num, n)
	}
}

func TestCharToValueInvalid(t *testing.T) {
	_, _, err := charToValue('!')
	assert.Error(t, err)
}

func TestCharToValueRejectsZero(t *testing.T) {
	_, _, err := charToValue('0')
	assert.Error(t, err)
}

func TestParseGridUnequalRows(t *testing.T) {
	_, _, err := parseGrid("__\n_\n")
	assert.Error(t, err)
}

func TestLoadPuzzleDimensionMismatch(t *testing.T) {
	_, err := LoadPuzzle("1_\n__\n", "1_\n", WithHost(noopHost{}))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestLoadPuzzleBasic(t *testing.T) {
	g, err := LoadPuzzle("1_\n__\n", "")
	assert.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.True(t, g.cellAt(Coord{0, 0}).rawIsNumber())
	assert.Equal(t, 1, g.cellAt(Coord{0, 0}).Number())
}
