package nurikabe

// solveStep runs one simple-rule pass to quiescence, then one
// enumeration/intersection pass (spec §4.5).
func (g *Grid) solveStep() stepStatus {
	status := g.simpleSolveToFixedPoint()
	if status.done() {
		return status
	}

	recStatus := g.recurseSolveStep()
	return status.merge(recStatus)
}

// simpleSolveToFixedPoint runs simpleSolveStep until it reports no
// change, cancellation, or contradiction.
func (g *Grid) simpleSolveToFixedPoint() stepStatus {
	overall := statusNoChange
	for {
		g.rebuild()
		st := g.simpleSolveStep()
		overall = overall.merge(st)
		if st.done() {
			return overall
		}
		if st == statusNoChange {
			return overall
		}
		g.dirty = true
	}
}

// simpleSolveStep applies every Region/Pool/Island/Gap rule once.
// The spec allows any order that reaches the same fixed point; this
// follows the order the rules are listed in §4.3.
func (g *Grid) simpleSolveStep() stepStatus {
	status := statusNoChange

	for _, r := range g.regions {
		st := g.simpleSolveRegion(r)
		status = status.merge(st)
		if st.done() {
			return status
		}
	}
	for _, p := range g.pools {
		st := g.simpleSolvePool(p)
		status = status.merge(st)
		if st.done() {
			return status
		}
	}
	for _, i := range g.islands {
		st := g.simpleSolveIsland(i)
		status = status.merge(st)
		if st.done() {
			return status
		}
	}
	for _, gp := range g.gaps {
		st := g.simpleSolveGap(gp)
		status = status.merge(st)
		if st.done() {
			return status
		}
	}

	if status == statusNoChange {
		if !g.singlePoolFeasible() {
			return statusContradict
		}
	}

	return status
}

// singlePoolFeasible checks that coloring every Gap cell tentatively
// Black still yields a single black component (spec §4.3's "single-
// pool feasibility", fatal if violated).
func (g *Grid) singlePoolFeasible() bool {
	if len(g.gaps) == 0 {
		return true
	}
	var allGapCoords []Coord
	for _, gp := range g.gaps {
		for c := range gp.coords {
			allGapCoords = append(allGapCoords, c)
		}
	}
	g.pushHypothesis(allGapCoords, nil)
	defer g.popHypothesis()

	visited := map[Coord]bool{}
	pools := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			start := Coord{r, c}
			if visited[start] || !g.isBlack(start) {
				continue
			}
			pools++
			if pools > 1 {
				return false
			}
			stack := []Coord{start}
			visited[start] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, n := range orthoNeighbors(cur) {
					if g.inBounds(n) && g.isBlack(n) && !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
	}
	return true
}

// recurseSolveStep enumerates completions for every incomplete Region
// and intersects them to extract newly forced cells (spec §4.4). It
// grows maxRemaining/maxSolutions and retries while either has room,
// per the budget-raising loop in §4.4/§4.5: a Region skipped for
// exceeding maxRemaining, or whose enumeration exceeds maxSolutions,
// doubles the corresponding budget and the whole sweep is retried —
// never intersected over a truncated completion set.
func (g *Grid) recurseSolveStep() stepStatus {
	g.rebuild()

	grew := true
	for grew {
		grew = false
		status := statusNoChange
		anySkipped := false
		budgetExhausted := false
		allEnumerated := true
		usedInside := map[Coord]bool{}

		for _, r := range g.regions {
			if r.complete() {
				continue
			}
			if g.checkBreak() {
				return statusCancel
			}
			if r.remaining() > g.cfg.MaxRemaining {
				anySkipped = true
				allEnumerated = false
				continue
			}
			sols, err := g.enumerate(r, 0)
			if err == ErrCancelled {
				return statusCancel
			}
			if err == ErrBudgetExhausted {
				budgetExhausted = true
				allEnumerated = false
				continue
			}
			if len(sols) == 0 {
				g.log.Debugw("region has no valid completions", "region", r.id)
				return statusContradict
			}
			for _, s := range sols {
				if !s.valid {
					continue
				}
				for _, c := range s.icoords {
					usedInside[c] = true
				}
			}
			status = status.merge(g.applyIntersection(r, sols))
		}

		if status.done() {
			return status
		}

		// Once every Region has been fully enumerated this sweep, any
		// Unknown cell that never appeared inside any valid completion
		// of any Region can never turn White.
		if allEnumerated {
			status = status.merge(g.applyUnusedCellsBlack(usedInside))
			if status.done() {
				return status
			}
		}

		if status == statusChanged {
			return status
		}
		if budgetExhausted {
			g.cfg.MaxSolutions *= 2
			g.log.Infow("raised maxSolutions", "value", g.cfg.MaxSolutions)
			grew = true
		}
		if anySkipped {
			g.cfg.MaxRemaining *= 2
			g.log.Infow("raised maxRemaining", "value", g.cfg.MaxRemaining)
			grew = true
		}
	}
	return statusNoChange
}

// applyUnusedCellsBlack forces Black any Unknown cell absent from
// usedInside, the union of icoords across every valid completion of
// every Region enumerated this sweep (spec §4.4: "cells not appearing
// in any completion of any Region are Black").
func (g *Grid) applyUnusedCellsBlack(usedInside map[Coord]bool) stepStatus {
	status := statusNoChange
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			coord := Coord{r, c}
			if usedInside[coord] || !g.isUnknown(coord) {
				continue
			}
			status = status.merge(g.setBlack(coord))
		}
	}
	return status
}

// applyIntersection forces cells that are White (or Black) in every
// valid completion of r, and stamps a weaker region-constraint on
// cells that border every completion without being uniformly White or
// Black, per spec §4.4's "Intersecting and applying".
func (g *Grid) applyIntersection(r *Region, sols []*Solution) stepStatus {
	var valid []*Solution
	for _, s := range sols {
		if s.valid {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return statusContradict
	}

	whiteEverywhere := map[Coord]int{}
	blackEverywhere := map[Coord]int{}
	touchedEverywhere := map[Coord]int{}
	for _, s := range valid {
		for _, c := range s.icoords {
			whiteEverywhere[c]++
			touchedEverywhere[c]++
		}
		for _, c := range s.ocoords {
			blackEverywhere[c]++
			touchedEverywhere[c]++
		}
	}

	status := statusNoChange
	for c, n := range whiteEverywhere {
		if n == len(valid) && g.isUnknown(c) {
			status = status.merge(g.setWhite(c))
		}
	}
	for c, n := range blackEverywhere {
		if n == len(valid) && g.isUnknown(c) {
			status = status.merge(g.setBlack(c))
		}
	}

	if g.atTopLevel() {
		for c, n := range touchedEverywhere {
			if n != len(valid) || !g.isUnknown(c) {
				continue
			}
			if g.cellAt(c).constraint.kind == constraintNone {
				g.cellAt(c).constraint = belongsToConstraint(r.id)
			}
		}
	}

	return status
}
