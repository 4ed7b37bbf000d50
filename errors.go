package nurikabe

import (
	"errors"
	"fmt"
)

// Sentinel errors the host can match with errors.Is.
var (
	// ErrLogicError means the board has been proven inconsistent at
	// the top level: a 2x2 all-black square, a region overflowing its
	// number, a white cell other than a solved "1" fully surrounded by
	// black, multiple sea pools once every unknown is forced black, or
	// a cell required to be two incompatible colors.
	ErrLogicError = errors.New("nurikabe: board is in contradiction")

	// ErrCancelled means the host's checkBreak hook returned true
	// mid-solve.
	ErrCancelled = errors.New("nurikabe: solve cancelled by host")

	// ErrBudgetExhausted means a Region's completion cache hit
	// maxSolutions before enumeration finished; the caller should raise
	// maxSolutions and retry rather than trust the partial cache.
	ErrBudgetExhausted = errors.New("nurikabe: solution cache budget exhausted")

	// ErrNumberImmutable means the caller tried to recolor a Number
	// cell.
	ErrNumberImmutable = errors.New("nurikabe: number cells cannot be recolored")

	// ErrCellNotUnknown means the caller tried to color a cell that is
	// already White or Black.
	ErrCellNotUnknown = errors.New("nurikabe: cell is not unknown")

	// ErrDimensionMismatch means a board and solution grid given to
	// LoadPuzzle differ in size. Rows of unequal length within one
	// grid are reported by a separate parse error.
	ErrDimensionMismatch = errors.New("nurikabe: board and solution grids differ in size")

	// ErrNoHypothesis means UnplaySolution or Commit was called with
	// an empty hypothesis stack.
	ErrNoHypothesis = errors.New("nurikabe: no hypothesis is active")

	// ErrBadCoord means a Coord given to the public API falls outside
	// the board.
	ErrBadCoord = errors.New("nurikabe: coordinate outside board")
)

// logicError wraps ErrLogicError with a human-readable cause, the way
// the C++ engine's logicAssert recorded a message alongside the
// "changed"/contradiction signal.
type logicError struct {
	msg string
}

func (e *logicError) Error() string { return fmt.Sprintf("nurikabe: %s", e.msg) }
func (e *logicError) Unwrap() error { return ErrLogicError }

func newLogicError(format string, args ...interface{}) error {
	return &logicError{msg: fmt.Sprintf(format, args...)}
}
