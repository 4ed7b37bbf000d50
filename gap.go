package nurikabe

// Gap is a maximal orthogonally connected set of Unknown cells. It
// remembers which Regions border it (directly or via border Islands)
// and which bordering Islands are still unattached.
type Gap struct {
	id            GapID
	coords        map[Coord]bool
	borderRegions map[RegionID]bool
	borderIslands map[IslandID]bool
}

func (g *Grid) gapBorder(gap *Gap) []Coord {
	seen := map[Coord]bool{}
	var out []Coord
	for gc := range gap.coords {
		for _, n := range orthoNeighbors(gc) {
			if g.inBounds(n) && !gap.coords[n] && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// simpleSolveGap applies the Gap-level and per-Unknown-cell rules of
// spec §4.3.
func (g *Grid) simpleSolveGap(gap *Gap) stepStatus {
	status := statusNoChange

	if g.allBorderBlack(gap) {
		for gc := range gap.coords {
			status = status.merge(g.setBlack(gc))
		}
		return status
	}

	for gc := range gap.coords {
		status = status.merge(g.simpleSolveUnknown(gc))
	}
	return status
}

// allBorderBlack reports whether every cell orthogonally bordering
// gap is Black.
func (g *Grid) allBorderBlack(gap *Gap) bool {
	border := g.gapBorder(gap)
	if len(border) == 0 {
		return false
	}
	for _, b := range border {
		if !g.isBlack(b) {
			return false
		}
	}
	return true
}

// simpleSolveUnknown applies the per-cell rules: region-forced-black,
// surround-uniform, black-unreachable, and unique-reachable-region, in
// that order, stopping at the first that changes u.
func (g *Grid) simpleSolveUnknown(u Coord) stepStatus {
	if !g.isUnknown(u) {
		return statusNoChange
	}
	cell := g.cellAt(u)

	if cell.constraint.kind == constraintMustBeBlack {
		return g.setBlack(u)
	}

	allNumberOrWhite, allBlack := true, true
	any := false
	for _, n := range orthoNeighbors(u) {
		if !g.inBounds(n) {
			continue
		}
		any = true
		if !g.isNumberOrWhite(n) {
			allNumberOrWhite = false
		}
		if !g.isBlack(n) {
			allBlack = false
		}
	}
	if any && allNumberOrWhite {
		return g.setWhite(u)
	}
	if any && allBlack {
		return g.setBlack(u)
	}

	if !g.blackReachableFrom(u) {
		return g.setWhite(u)
	}

	reachable := g.regionsReachableFrom(u, map[Coord]bool{})
	if len(reachable) == 1 && g.atTopLevel() && cell.constraint.kind == constraintNone {
		var only RegionID
		for id := range reachable {
			only = id
		}
		cell.constraint = belongsToConstraint(only)
	}

	return statusNoChange
}

// blackReachableFrom reports whether any Black cell is reachable from
// u through Unknown cells.
func (g *Grid) blackReachableFrom(u Coord) bool {
	visited := map[Coord]bool{u: true}
	stack := []Coord{u}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range orthoNeighbors(cur) {
			if !g.inBounds(n) || visited[n] {
				continue
			}
			if g.isBlack(n) {
				return true
			}
			if g.isUnknown(n) {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return false
}

// regionsReachableFrom returns the incomplete regions reachable from u
// via canConnectToRegion, one call per known region (bounded search).
func (g *Grid) regionsReachableFrom(u Coord, visited map[Coord]bool) map[RegionID]bool {
	out := map[RegionID]bool{}
	for id, r := range g.regions {
		if r.complete() {
			continue
		}
		if g.canConnectToRegion(u, r) {
			out[id] = true
		}
	}
	return out
}

// canConnectToRegion is the recursive distance-bounded reachability
// search of spec §4.3: abort once the distance-plus-path bound is
// exceeded, abort on entering a cell constrained to a different
// region, and succeed only if the union of R's cells, the traversed
// path, and bordering Islands does not exceed R.value.
func (g *Grid) canConnectToRegion(start Coord, r *Region) bool {
	visited := map[Coord]bool{}
	touched := map[Coord]bool{}
	for rc := range r.coords {
		touched[rc] = true
	}

	var search func(c Coord, pathLen int) bool
	search = func(c Coord, pathLen int) bool {
		if visited[c] {
			return false
		}
		visited[c] = true

		if c.Dist(r.numberCell)+pathLen > r.value {
			return false
		}
		cell := g.cellAt(c)
		if cell.constraint.kind == constraintMustBelongTo && cell.constraint.region != r.id {
			return false
		}
		if cell.region.valid() && cell.region != r.id {
			return false
		}

		touched[c] = true
		if c == r.numberCell || r.coords[c] {
			return len(touched) <= r.value
		}
		for _, n := range orthoNeighbors(c) {
			if !g.inBounds(n) {
				continue
			}
			if !g.isUnknown(n) && !g.isWhite(n) {
				continue
			}
			if search(n, pathLen+1) {
				return true
			}
		}
		return false
	}

	return search(start, 0)
}
