package nurikabe

import "fmt"

// CellValue is the top-level color of a cell.
type CellValue int

const (
	// Unknown cells may still become white or black.
	Unknown CellValue = iota
	// White cells belong to a numbered island.
	White
	// Black cells belong to the sea.
	Black
	// Number cells are givens; their size N is stored alongside, never
	// in the CellValue itself (see Cell.num).
	Number
)

func (v CellValue) String() string {
	switch v {
	case Unknown:
		return "unknown"
	case White:
		return "white"
	case Black:
		return "black"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("CellValue(%d)", int(v))
	}
}

// MinNumber and MaxNumber bound a Nurikabe given: 1 through 35 (digits
// 1-9 and letters A-Z in the puzzle text format; charToValue rejects
// '0').
const (
	MinNumber = 1
	MaxNumber = 35
)

// constraintKind tags a region-constraint without resorting to the
// source engine's sentinel-pointer hack (spec Open Questions): a
// cell's deduced restriction is either unconstrained, forced black,
// or tied to one specific region.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintMustBeBlack
	constraintMustBelongTo
)

// regionConstraint is the per-cell "region-constraint" field: a
// tagged value carrying a deduction across rebuilds. It persists
// across rebuild but is cleared on reset.
type regionConstraint struct {
	kind   constraintKind
	region RegionID // valid only when kind == constraintMustBelongTo
}

var noConstraint = regionConstraint{kind: constraintNone}

func blackConstraint() regionConstraint {
	return regionConstraint{kind: constraintMustBeBlack}
}

func belongsToConstraint(r RegionID) regionConstraint {
	return regionConstraint{kind: constraintMustBelongTo, region: r}
}

// allows reports whether a cell under this constraint may join region
// r.
func (rc regionConstraint) allows(r RegionID) bool {
	switch rc.kind {
	case constraintNone:
		return true
	case constraintMustBeBlack:
		return false
	case constraintMustBelongTo:
		return rc.region == r
	default:
		return false
	}
}
