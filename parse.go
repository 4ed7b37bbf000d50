package nurikabe

import (
	"fmt"
	"strings"
)

// charToValue decodes one puzzle-text character into a CellValue and,
// for Number cells, the given size. See spec §6.
func charToValue(ch byte) (CellValue, int, error) {
	switch {
	case ch == '_':
		return Unknown, 0, nil
	case ch == '.':
		return White, 0, nil
	case ch == '*':
		return Black, 0, nil
	case ch == '0':
		return Unknown, 0, fmt.Errorf("nurikabe: %q is not a valid region size, minimum is %d", ch, MinNumber)
	case ch >= '1' && ch <= '9':
		return Number, int(ch - '0'), nil
	case ch >= 'A' && ch <= 'Z':
		return Number, 10 + int(ch-'A'), nil
	default:
		return Unknown, 0, fmt.Errorf("nurikabe: invalid puzzle character %q", ch)
	}
}

// parseGrid splits text into non-empty lines and decodes each into a
// row of CellValue/number pairs, failing if rows have unequal length.
func parseGrid(text string) ([][]CellValue, [][]int, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var rows []string
	for _, l := range lines {
		if l == "" {
			continue
		}
		rows = append(rows, l)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	values := make([][]CellValue, len(rows))
	nums := make([][]int, len(rows))
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, nil, fmt.Errorf("nurikabe: row %d has length %d, want %d", i, len(row), width)
		}
		values[i] = make([]CellValue, width)
		nums[i] = make([]int, width)
		for j := 0; j < width; j++ {
			v, n, err := charToValue(row[j])
			if err != nil {
				return nil, nil, fmt.Errorf("nurikabe: row %d: %w", i, err)
			}
			values[i][j] = v
			nums[i][j] = n
		}
	}
	return values, nums, nil
}

// loadPuzzle parses board and an optional solution grid of identical
// dimensions and constructs a ready Grid.
func loadPuzzle(board, solution string, opts ...GridOption) (*Grid, error) {
	values, nums, err := parseGrid(board)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("nurikabe: empty board")
	}
	rows, cols := len(values), len(values[0])

	var solValues [][]CellValue
	if strings.TrimSpace(solution) != "" {
		solValues, _, err = parseGrid(solution)
		if err != nil {
			return nil, err
		}
		if len(solValues) != rows || (rows > 0 && len(solValues[0]) != cols) {
			return nil, ErrDimensionMismatch
		}
	}

	g := newGrid(rows, cols, opts...)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.cellAt(Coord{r, c})
			cell.value = values[r][c]
			if values[r][c] == Number {
				cell.num = nums[r][c]
			}
			if solValues != nil {
				cell.solution = solValues[r][c]
			}
		}
	}

	g.buildRegions()
	g.rebuild()
	return g, nil
}
