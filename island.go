package nurikabe

// Island is a maximal orthogonally connected set of White cells
// containing no Number cell: a white cluster not yet attached to a
// Region.
type Island struct {
	id     IslandID
	coords map[Coord]bool
}

func (g *Grid) islandUnknownBorder(i *Island) []Coord {
	seen := map[Coord]bool{}
	var out []Coord
	for ic := range i.coords {
		for _, n := range orthoNeighbors(ic) {
			if g.inBounds(n) && g.isUnknown(n) && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// simpleSolveIsland applies the single-exit and unique-reachable-
// region rules to an unattached white cluster.
func (g *Grid) simpleSolveIsland(i *Island) stepStatus {
	status := statusNoChange
	border := g.islandUnknownBorder(i)
	if len(border) == 1 {
		status = status.merge(g.setWhite(border[0]))
	}

	reachable := g.regionsReachableFromIsland(i)
	if len(reachable) == 1 && g.atTopLevel() {
		var only RegionID
		for id := range reachable {
			only = id
		}
		for ic := range i.coords {
			cell := g.cellAt(ic)
			if cell.constraint.kind == constraintNone {
				cell.constraint = belongsToConstraint(only)
			}
		}
	}
	return status
}

// regionsReachableFromIsland returns the set of incomplete Regions
// reachable from i through Unknowns and Whites, respecting each
// cell's region-constraint.
func (g *Grid) regionsReachableFromIsland(i *Island) map[RegionID]bool {
	out := map[RegionID]bool{}
	visited := map[Coord]bool{}
	var walk func(c Coord)
	walk = func(c Coord) {
		if visited[c] {
			return
		}
		visited[c] = true
		for _, n := range orthoNeighbors(c) {
			if !g.inBounds(n) || visited[n] {
				continue
			}
			cell := g.cellAt(n)
			if cell.rawIsNumber() {
				if r, ok := g.regions[cell.region]; ok && !r.complete() {
					out[cell.region] = true
				}
				continue
			}
			if cell.region.valid() {
				if r, ok := g.regions[cell.region]; ok && !r.complete() {
					out[cell.region] = true
				}
				continue
			}
			if g.isUnknown(n) {
				if cell.constraint.kind == constraintMustBelongTo {
					out[cell.constraint.region] = true
					continue
				}
				if cell.constraint.kind == constraintMustBeBlack {
					continue
				}
				walk(n)
			} else if g.isWhite(n) {
				walk(n)
			}
		}
	}
	for ic := range i.coords {
		walk(ic)
	}
	return out
}
