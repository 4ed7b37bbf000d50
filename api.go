package nurikabe

import "errors"

// Host is the set of callbacks the core drives while solving. A GUI,
// a CLI, or a test harness all implement it the same way; the core
// never assumes anything about what's on the other end.
type Host interface {
	// SetBusy is advisory: called true before a potentially slow
	// Solve/SolveStep and false after.
	SetBusy(bool)
	// NotifyChanged fires after one or more cells changed as part of
	// a public operation; Solve fires it after each iteration that
	// changed something.
	NotifyChanged()
	// CheckBreak is polled cooperatively; returning true cancels the
	// in-progress solve.
	CheckBreak() bool
}

type noopHost struct{}

func (noopHost) SetBusy(bool)     {}
func (noopHost) NotifyChanged()   {}
func (noopHost) CheckBreak() bool { return false }

// LoadPuzzle parses board and solution (solution may be empty) and
// returns a ready-to-solve Grid. See parse.go for the text format.
func LoadPuzzle(board, solution string, opts ...GridOption) (*Grid, error) {
	return loadPuzzle(board, solution, opts...)
}

// Reset returns the board to its Number cells alone: every non-Number
// cell becomes Unknown, region-constraints clear, the hypothesis stack
// empties, and Regions are rebuilt from their Number cells. Cells that
// the board text gave as White or Black are cleared to Unknown as
// well, and budgets raised by earlier solves keep their raised values,
// so the result equals the state after LoadPuzzle only for a board of
// Numbers and Unknowns solved within the starting budgets.
func (g *Grid) Reset() {
	g.hyp.reset()
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			if cell.rawIsNumber() {
				continue
			}
			cell.value = Unknown
			cell.resetDerived()
			cell.resetConstraint()
		}
	}
	g.nextReg = 0
	g.regions = map[RegionID]*Region{}
	g.dirty = true
	g.buildRegions()
	g.rebuild()
	g.changed = true
	g.flushChanged()
}

// SolveStep runs exactly one solver iteration (one simple-rule pass to
// quiescence, then one enumeration/intersection pass) and reports
// whether anything changed.
func (g *Grid) SolveStep() (bool, error) {
	g.host.SetBusy(true)
	defer g.host.SetBusy(false)

	status := g.solveStep()
	g.flushChanged()

	switch status {
	case statusCancel:
		return false, ErrCancelled
	case statusContradict:
		return false, ErrLogicError
	default:
		return status == statusChanged, nil
	}
}

// Solve runs SolveStep to a fixed point: either isSolved(), a
// LogicError, a Cancelled, or no further progress at the current
// budget ceiling with budgets not growing.
func (g *Grid) Solve() error {
	g.host.SetBusy(true)
	defer g.host.SetBusy(false)

	for {
		status := g.solveStep()
		g.flushChanged()
		switch status {
		case statusCancel:
			return ErrCancelled
		case statusContradict:
			return ErrLogicError
		case statusNoChange:
			return nil
		}
		if g.IsSolved() {
			return nil
		}
	}
}

// IsSolved reports whether every Region is complete, exactly one Pool
// remains, and zero Islands/Gaps remain.
func (g *Grid) IsSolved() bool {
	g.rebuild()
	if len(g.islands) != 0 || len(g.gaps) != 0 {
		return false
	}
	if len(g.pools) != 1 {
		return false
	}
	for _, r := range g.regions {
		if !r.complete() {
			return false
		}
	}
	return true
}

// SetCellBlack and SetCellWhite are user-driven edits: each is a
// self-contained atomic change to one Unknown cell at the top level.
func (g *Grid) SetCellBlack(c Coord) error { return g.userSetColor(c, Black) }
func (g *Grid) SetCellWhite(c Coord) error { return g.userSetColor(c, White) }

func (g *Grid) userSetColor(c Coord, v CellValue) error {
	if !g.inBounds(c) {
		return ErrBadCoord
	}
	if !g.atTopLevel() {
		return errors.New("nurikabe: cannot edit a cell while a hypothesis is active")
	}
	cell := g.cellAt(c)
	if cell.rawIsNumber() {
		return ErrNumberImmutable
	}
	if !cell.rawIsUnknown() {
		return ErrCellNotUnknown
	}
	status := g.setColor(c, v)
	g.flushChanged()
	if status == statusContradict {
		return ErrLogicError
	}
	return nil
}

// GetRegionSolutions enumerates completion candidates for region,
// optionally bounded to maxDepth additional cells (0 means
// unbounded, governed only by the grid's configured budgets).
func (g *Grid) GetRegionSolutions(region RegionID, maxDepth int) ([]*Solution, error) {
	r, ok := g.regions[region]
	if !ok {
		return nil, errors.New("nurikabe: unknown region id")
	}
	g.rebuild()
	return g.enumerate(r, maxDepth)
}

// PlaySolution pushes a hypothesis overlaying sol's cells so the host
// can preview a completion without committing it.
func (g *Grid) PlaySolution(sol *Solution) {
	g.pushHypothesis(sol.blackCoords, sol.whiteCoords)
}

// UnplaySolution pops the hypothesis pushed by the most recent
// PlaySolution.
func (g *Grid) UnplaySolution() error {
	if g.atTopLevel() {
		return ErrNoHypothesis
	}
	g.popHypothesis()
	return nil
}

// Commit atomically promotes the current (single) overlay into the
// top-level board, then pops it.
func (g *Grid) Commit() error {
	if g.atTopLevel() {
		return ErrNoHypothesis
	}
	ov, _ := g.hyp.top()
	g.hyp.pop()
	for c := range ov.white {
		g.setColor(c, White)
	}
	for c := range ov.black {
		g.setColor(c, Black)
	}
	g.dirty = true
	g.flushChanged()
	return nil
}
