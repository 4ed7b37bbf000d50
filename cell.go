package nurikabe

// Cell is one grid square. Its Region/Pool/Island/Gap associations are
// ids, not pointers: they are lookup aids recomputed by rebuild, never
// owning references (see ids.go).
type Cell struct {
	coord Coord
	value CellValue
	num   int // meaningful only when value == Number

	// solution is the reference-solution color for this cell, if a
	// solution grid was supplied to LoadPuzzle. Unknown means "no
	// hint".
	solution CellValue

	constraint regionConstraint

	region RegionID
	pool   PoolID
	island IslandID
	gap    GapID
}

func newCell(coord Coord) Cell {
	return Cell{
		coord:      coord,
		value:      Unknown,
		solution:   Unknown,
		constraint: noConstraint,
		region:     noID,
		pool:       noID,
		island:     noID,
		gap:        noID,
	}
}

// Coord returns the cell's grid position.
func (c *Cell) Coord() Coord { return c.coord }

// rawIsUnknown/White/Black/Number report the cell's stored, top-level
// color — unaffected by any active hypothesis. Hypothesis-aware
// queries live on Grid (isWhite, isBlack, ...), since the overlay is a
// property of the solve in progress, not of the cell itself.
func (c *Cell) rawIsUnknown() bool { return c.value == Unknown }
func (c *Cell) rawIsWhite() bool   { return c.value == White }
func (c *Cell) rawIsBlack() bool   { return c.value == Black }
func (c *Cell) rawIsNumber() bool  { return c.value == Number }

// Number returns the island size this cell gives, or 0 if the cell
// isn't a Number cell.
func (c *Cell) Number() int {
	if c.value == Number {
		return c.num
	}
	return 0
}

// IsSolvedWhite reports whether the reference solution (if any) colors
// this cell white.
func (c *Cell) IsSolvedWhite() bool { return c.solution == White }

// resetDerived clears the weak back-references ahead of a rebuild. It
// never touches value, num, solution or constraint.
func (c *Cell) resetDerived() {
	c.region = noID
	c.pool = noID
	c.island = noID
	c.gap = noID
}

// resetConstraint clears the region-constraint field. Called by
// Grid.Reset, never by rebuild (the constraint persists across
// rebuilds per spec).
func (c *Cell) resetConstraint() {
	c.constraint = noConstraint
}
