package nurikabe

// Pool is a maximal orthogonally connected set of Black cells.
type Pool struct {
	id     PoolID
	coords map[Coord]bool
}

// unknownBorder returns the Unknown cells orthogonally bordering the
// pool, deduplicated.
func (g *Grid) poolUnknownBorder(p *Pool) []Coord {
	seen := map[Coord]bool{}
	var out []Coord
	for pc := range p.coords {
		for _, n := range orthoNeighbors(pc) {
			if g.inBounds(n) && g.isUnknown(n) && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// simpleSolvePool applies the L-corner and single-exit-for-pool rules
// to p, iterating the L-corner check to a local fixed point so an
// emerging chain of black dominoes forces every cell in one pass
// (spec §4.7, supplemented from original_source's recursive corner
// check).
func (g *Grid) simpleSolvePool(p *Pool) stepStatus {
	status := statusNoChange
	for {
		st := g.lCornerRule(p)
		status = status.merge(st)
		if st != statusChanged {
			break
		}
	}
	status = status.merge(g.singleExitPool(p))
	return status
}

// lCornerRule: whenever three cells of a 2x2 block are Black, the
// fourth must be White.
func (g *Grid) lCornerRule(p *Pool) stepStatus {
	status := statusNoChange
	for pc := range p.coords {
		for _, corner := range [][2]Coord{
			{pc.East(1), pc.South(1)},
			{pc.West(1), pc.South(1)},
			{pc.East(1), pc.North(1)},
			{pc.West(1), pc.North(1)},
		} {
			a, b := corner[0], corner[1]
			diag := Coord{b.Row, a.Col}
			if !g.inBounds(a) || !g.inBounds(b) || !g.inBounds(diag) {
				continue
			}
			blacks := 0
			if g.isBlack(pc) {
				blacks++
			}
			if g.isBlack(a) {
				blacks++
			}
			if g.isBlack(b) {
				blacks++
			}
			if blacks == 3 && g.isUnknown(diag) {
				status = status.merge(g.setWhite(diag))
			}
		}
	}
	return status
}

// singleExitPool: once more than one Pool exists, a Pool with exactly
// one Unknown neighbor forces that neighbor Black.
func (g *Grid) singleExitPool(p *Pool) stepStatus {
	if len(g.pools) <= 1 {
		return statusNoChange
	}
	border := g.poolUnknownBorder(p)
	if len(border) == 1 {
		return g.setBlack(border[0])
	}
	return statusNoChange
}
