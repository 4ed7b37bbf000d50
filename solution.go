package nurikabe

import (
	"sort"

	"github.com/google/uuid"
)

// Solution is a completion candidate for a Region: a hypothetical set
// of N cells that would complete it, plus the bordering unknowns that
// must then be black, and the post-validation partition used for
// intersection.
type Solution struct {
	id   uint32
	hash string

	icoords []Coord // the N cells of the hypothetical completion
	ocoords []Coord // bordering unknowns forced Black by this completion

	whiteCoords []Coord // full white partition under this hypothesis
	blackCoords []Coord // full black partition under this hypothesis

	valid bool
}

// ID is a random identifier assigned when the Solution is built. It
// does not change for this Solution, but re-enumerating the region
// builds new Solutions with new IDs.
func (s *Solution) ID() uint32 { return s.id }

// Valid reports whether the completion survived global validity
// checking when hypothesized.
func (s *Solution) Valid() bool { return s.valid }

func newSolutionID() uint32 { return uuid.New().ID() }

func coordSetHash(coords []Coord) string {
	sorted := append([]Coord(nil), coords...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	b := make([]byte, 0, len(sorted)*9)
	for _, c := range sorted {
		b = append(b, byte(c.Row), byte(c.Row>>8), byte(c.Row>>16), byte(c.Row>>24),
			byte(c.Col), byte(c.Col>>8), byte(c.Col>>16), byte(c.Col>>24), '|')
	}
	return string(b)
}

// enumerate runs the depth-first completion search of spec §4.4 for
// region r, returning every candidate Solution found within the grid's
// budgets, each marked valid or invalid by buildSolution. maxDepth, if
// nonzero, additionally bounds the search; only unbounded results are
// cached.
func (g *Grid) enumerate(r *Region, maxDepth int) ([]*Solution, error) {
	if r.solutionsOK && maxDepth == 0 {
		return r.solutions, nil
	}

	limit := g.cfg.MaxSolutions
	seen := map[string]bool{}
	var out []*Solution
	budgetExhausted := false

	var expand func(coords map[Coord]bool) stepStatus
	expand = func(coords map[Coord]bool) stepStatus {
		if g.checkBreak() {
			return statusCancel
		}
		if len(coords) > r.value {
			return statusNoChange
		}
		if maxDepth > 0 && len(coords)-len(r.coords) > maxDepth {
			return statusNoChange
		}

		for _, oc := range r.oneBlack {
			if !oc.satisfiedOutside(coords) {
				return statusNoChange
			}
		}

		if len(coords) == r.value {
			h := coordSetHash(keysOf(coords))
			if seen[h] {
				return statusNoChange
			}
			if len(seen) >= limit {
				budgetExhausted = true
				return statusCancel // unwind the whole search; the cache is unsound truncated
			}
			seen[h] = true
			sol := g.buildSolution(r, coords)
			if sol != nil {
				out = append(out, sol)
			}
			return statusChanged
		}

		forced := forcedExpansionSet(r, coords)
		var candidates []Coord
		if forced != nil {
			candidates = forced
		} else {
			candidates = borderOf(g, coords)
		}

		status := statusNoChange
		for _, cand := range candidates {
			if coords[cand] {
				continue
			}
			if !g.canBeInRegion(cand, r) {
				continue
			}
			next := floodCopy(coords)
			floodInto(g, next, cand, r)
			st := expand(next)
			status = status.merge(st)
			if st == statusCancel {
				return statusCancel
			}
		}
		return status
	}

	status := expand(copyCoordSet(r.coords))
	if budgetExhausted {
		return nil, ErrBudgetExhausted
	}
	if status == statusCancel {
		return nil, ErrCancelled
	}

	if maxDepth == 0 {
		r.solutions = out
		r.solutionsOK = true
	}
	return out, nil
}

func keysOf(m map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

func copyCoordSet(m map[Coord]bool) map[Coord]bool {
	out := make(map[Coord]bool, len(m))
	for c := range m {
		out[c] = true
	}
	return out
}

func floodCopy(m map[Coord]bool) map[Coord]bool { return copyCoordSet(m) }

// floodInto adds u and, recursively, its Number-or-White orthogonal
// neighbors that can belong to r, to coords — the "floodOf(u over
// Number-or-White)" expansion step of spec §4.4.
func floodInto(g *Grid, coords map[Coord]bool, u Coord, r *Region) {
	if coords[u] {
		return
	}
	coords[u] = true
	for _, n := range orthoNeighbors(u) {
		if !g.inBounds(n) || coords[n] {
			continue
		}
		if g.isNumberOrWhite(n) && g.canBeInRegion(n, r) {
			floodInto(g, coords, n, r)
		}
	}
}

// borderOf returns the Unknown/White cells orthogonally bordering
// coords, deduplicated.
func borderOf(g *Grid, coords map[Coord]bool) []Coord {
	seen := map[Coord]bool{}
	var out []Coord
	for c := range coords {
		for _, n := range orthoNeighbors(c) {
			if !g.inBounds(n) || coords[n] || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// forcedExpansionSet returns the coords of an unsatisfied OneWhite
// constraint whose cells all border coords, or nil if none apply
// (spec §4.4 pruning rule 4).
func forcedExpansionSet(r *Region, coords map[Coord]bool) []Coord {
	for _, ow := range r.oneWhite {
		if ow.forcedBy(coords) {
			return ow.coords
		}
	}
	return nil
}

// buildSolution validates a candidate completion under a hypothesis
// and, if globally valid, records its partition for intersection.
func (g *Grid) buildSolution(r *Region, coords map[Coord]bool) *Solution {
	inside := keysOf(coords)
	var ocoords []Coord
	for _, c := range borderOf(g, coords) {
		if g.isUnknown(c) {
			ocoords = append(ocoords, c)
		}
	}

	var whites []Coord
	for _, c := range inside {
		if !g.cellAt(c).rawIsNumber() {
			whites = append(whites, c)
		}
	}

	g.pushHypothesis(ocoords, whites)
	ok := g.checkValid()
	g.popHypothesis()

	sol := &Solution{
		id:      newSolutionID(),
		hash:    coordSetHash(inside),
		icoords: inside,
		ocoords: ocoords,
		valid:   ok,
	}
	if ok {
		sol.whiteCoords = whites
		sol.blackCoords = ocoords
	}
	return sol
}
