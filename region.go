package nurikabe

// Region is the in-progress white island rooted at one Number cell.
type Region struct {
	id         RegionID
	numberCell Coord
	value      int
	coords     map[Coord]bool

	oneWhite []oneWhiteConstraint
	oneBlack []oneBlackConstraint

	solutions    []*Solution
	solutionsOK  bool // cache valid until any color anywhere changes
}

func newRegion(id RegionID, numberCell Coord, value int) *Region {
	return &Region{
		id:         id,
		numberCell: numberCell,
		value:      value,
		coords:     map[Coord]bool{numberCell: true},
	}
}

// complete reports whether the region has reached its full size.
func (r *Region) complete() bool { return len(r.coords) == r.value }

// remaining is how many more cells the region needs.
func (r *Region) remaining() int { return r.value - len(r.coords) }

// invalidate drops the cached completions; called whenever any cell
// anywhere changes color (spec §3, Solution lifecycle).
func (r *Region) invalidate() {
	r.solutions = nil
	r.solutionsOK = false
}

// canBeInRegion reports whether cell c could join this region: it is
// Unknown or already this region's White/Number, its region-
// constraint (if any) allows r, and it doesn't already belong to a
// different region.
func (g *Grid) canBeInRegion(c Coord, r *Region) bool {
	cell := g.cellAt(c)
	if cell.rawIsNumber() {
		return c == r.numberCell
	}
	if cell.region.valid() && cell.region != r.id {
		return false
	}
	if !cell.constraint.allows(r.id) {
		return false
	}
	v := g.colorOf(c)
	return v == Unknown || v == White
}

// buildRegions (re)creates one Region per Number cell. Called at
// LoadPuzzle and Reset; never during rebuild (spec §4.2: "Regions are
// not recreated - only their coords are refreshed").
func (g *Grid) buildRegions() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.cellAt(Coord{r, c})
			if !cell.rawIsNumber() {
				continue
			}
			id := g.nextReg
			g.nextReg++
			reg := newRegion(id, cell.coord, cell.num)
			g.regions[id] = reg
			cell.region = id
		}
	}
}

// refreshRegionCoords floods White cells from each region's number
// cell to rebuild its coords set (spec §4.2). Called by rebuild.
func (g *Grid) refreshRegionCoords(owner map[Coord]RegionID) {
	for id, r := range g.regions {
		coords := map[Coord]bool{r.numberCell: true}
		stack := []Coord{r.numberCell}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range orthoNeighbors(cur) {
				if !g.inBounds(n) || coords[n] {
					continue
				}
				if !g.cellAt(n).rawIsWhite() {
					continue
				}
				if owned, ok := owner[n]; ok && owned != id {
					continue
				}
				coords[n] = true
				owner[n] = id
				g.cellAt(n).region = id
				stack = append(stack, n)
			}
		}
		r.coords = coords
	}
}

// simpleSolveRegion applies the per-Region rules of spec §4.3 once and
// returns the resulting status.
func (g *Grid) simpleSolveRegion(r *Region) stepStatus {
	status := statusNoChange

	if g.checkBreak() {
		return statusCancel
	}

	if r.complete() {
		return status.merge(g.surroundComplete(r))
	}

	status = status.merge(g.twoAwayRule(r))
	status = status.merge(g.diagonalNeighborRule(r))

	if st := g.singleExitRegion(r); st != statusNoChange {
		return status.merge(st)
	}

	if r.remaining() == 2 {
		status = status.merge(g.cornerForcingTwoLeft(r))
	}

	status = status.merge(g.reachabilityEnclosure(r))

	if g.atTopLevel() {
		g.stampBorderConstraint(r)
	}

	return status
}

// twoAwayRule: a cell two cardinal steps from an R-coord that belongs
// to a different region forces the intermediate cell Black.
func (g *Grid) twoAwayRule(r *Region) stepStatus {
	status := statusNoChange
	for rc := range r.coords {
		for _, n := range orthoNeighbors(rc) {
			if !g.inBounds(n) {
				continue
			}
			mid := n
			for _, far := range orthoNeighbors(mid) {
				if far == rc || !g.inBounds(far) {
					continue
				}
				fc := g.cellAt(far)
				if !fc.region.valid() || fc.region == r.id {
					continue
				}
				if !g.isUnknown(mid) {
					continue
				}
				status = status.merge(g.setBlack(mid))
			}
		}
	}
	return status
}

// diagonalNeighborRule: if a diagonal neighbor of an R-cell belongs to
// a different region, the two orthogonally-between cells go Black.
func (g *Grid) diagonalNeighborRule(r *Region) stepStatus {
	status := statusNoChange
	for rc := range r.coords {
		for _, d := range diagNeighbors(rc) {
			if !g.inBounds(d) {
				continue
			}
			dc := g.cellAt(d)
			if !dc.region.valid() || dc.region == r.id {
				continue
			}
			between1 := Coord{rc.Row, d.Col}
			between2 := Coord{d.Row, rc.Col}
			if g.isUnknown(between1) {
				status = status.merge(g.setBlack(between1))
			}
			if g.isUnknown(between2) {
				status = status.merge(g.setBlack(between2))
			}
		}
	}
	return status
}

// surroundComplete: once R is complete, every orthogonal unknown
// neighbor turns Black.
func (g *Grid) surroundComplete(r *Region) stepStatus {
	status := statusNoChange
	for rc := range r.coords {
		for _, n := range orthoNeighbors(rc) {
			if g.inBounds(n) && g.isUnknown(n) {
				status = status.merge(g.setBlack(n))
			}
		}
	}
	return status
}

// singleExitRegion: if R is incomplete and has exactly one Unknown
// neighbor, that cell turns White.
func (g *Grid) singleExitRegion(r *Region) stepStatus {
	var exit Coord
	count := 0
	for rc := range r.coords {
		for _, n := range orthoNeighbors(rc) {
			if g.inBounds(n) && g.isUnknown(n) {
				if count == 0 || n != exit {
					exit = n
					count++
				}
			}
		}
	}
	if count == 1 {
		return g.setWhite(exit)
	}
	return statusNoChange
}

// cornerForcingTwoLeft: when R needs exactly two more cells and its
// two unknown neighbors touch only at a corner, the opposite corner
// cells that are not already White or a Number (normally just the far
// cell) are forced Black and stamped with a must-be-Black
// region-constraint (spec §4.3).
func (g *Grid) cornerForcingTwoLeft(r *Region) stepStatus {
	var exits []Coord
	seen := map[Coord]bool{}
	for rc := range r.coords {
		for _, n := range orthoNeighbors(rc) {
			if g.inBounds(n) && g.isUnknown(n) && !seen[n] {
				seen[n] = true
				exits = append(exits, n)
			}
		}
	}
	if len(exits) != 2 || !exits[0].CornerTouches(exits[1]) {
		return statusNoChange
	}
	a, b := exits[0], exits[1]
	oppA := Coord{a.Row, b.Col}
	oppB := Coord{b.Row, a.Col}
	status := statusNoChange
	for _, opp := range []Coord{oppA, oppB} {
		if !g.inBounds(opp) {
			continue
		}
		if g.isUnknown(opp) {
			status = status.merge(g.setBlack(opp))
		}
		if g.atTopLevel() && !g.isNumberOrWhite(opp) {
			cell := g.cellAt(opp)
			if cell.constraint.kind == constraintNone {
				cell.constraint = blackConstraint()
			}
		}
	}
	return status
}

// reachabilityEnclosure: if exactly N cells are reachable from R's
// number within R's remaining budget, filtered by canBeInRegion, mark
// them all White.
func (g *Grid) reachabilityEnclosure(r *Region) stepStatus {
	reach := map[Coord]bool{}
	var walk func(c Coord, budget int)
	walk = func(c Coord, budget int) {
		if reach[c] {
			return
		}
		reach[c] = true
		if budget == 0 {
			return
		}
		for _, n := range orthoNeighbors(c) {
			if !g.inBounds(n) || reach[n] {
				continue
			}
			if !g.canBeInRegion(n, r) {
				continue
			}
			walk(n, budget-1)
		}
	}
	walk(r.numberCell, r.remaining())

	if len(reach) != r.value {
		return statusNoChange
	}
	status := statusNoChange
	for c := range reach {
		if g.isUnknown(c) {
			status = status.merge(g.setWhite(c))
		}
	}
	return status
}

// stampBorderConstraint marks Unknown orthogonal neighbors of r's
// coords with region-constraint = r, at the top level only.
func (g *Grid) stampBorderConstraint(r *Region) {
	for rc := range r.coords {
		for _, n := range orthoNeighbors(rc) {
			if !g.inBounds(n) {
				continue
			}
			cell := g.cellAt(n)
			if cell.rawIsUnknown() && cell.constraint.kind == constraintNone {
				cell.constraint = belongsToConstraint(r.id)
			}
		}
	}
}
