package nurikabe

// rebuild recomputes Pools, Islands, Gaps and Region coords from the
// current board colors. It is a no-op unless dirty is set (spec §4.2:
// "idempotent ... callers may force a rebuild").
func (g *Grid) rebuild() {
	if !g.dirty {
		return
	}
	g.doRebuild()
	g.dirty = false
}

// forceRebuild rebuilds unconditionally, regardless of the dirty
// flag.
func (g *Grid) forceRebuild() {
	g.doRebuild()
	g.dirty = false
}

func (g *Grid) doRebuild() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cellAt(Coord{r, c}).resetDerived()
		}
	}
	// Number cells keep their region id; resetDerived cleared it above,
	// so restore it before flooding.
	for id, reg := range g.regions {
		g.cellAt(reg.numberCell).region = id
	}

	g.pools = map[PoolID]*Pool{}
	g.islands = map[IslandID]*Island{}
	g.gaps = map[GapID]*Gap{}
	g.nextPool, g.nextIsland, g.nextGap = 0, 0, 0

	owner := map[Coord]RegionID{}
	g.refreshRegionCoords(owner)

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			coord := Coord{r, c}
			cell := g.cellAt(coord)
			switch {
			case cell.rawIsBlack() && !cell.pool.valid():
				g.floodPool(coord)
			case cell.rawIsWhite() && !cell.region.valid() && !cell.island.valid():
				g.floodIsland(coord)
			case cell.rawIsUnknown() && !cell.gap.valid():
				g.floodGap(coord)
			}
		}
	}

	g.deriveConstraints()
}

func (g *Grid) floodPool(start Coord) {
	id := g.nextPool
	g.nextPool++
	p := &Pool{id: id, coords: map[Coord]bool{}}
	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.coords[cur] {
			continue
		}
		cell := g.cellAt(cur)
		if !cell.rawIsBlack() || cell.pool.valid() {
			continue
		}
		p.coords[cur] = true
		cell.pool = id
		for _, n := range orthoNeighbors(cur) {
			if g.inBounds(n) && g.cellAt(n).rawIsBlack() && !g.cellAt(n).pool.valid() {
				stack = append(stack, n)
			}
		}
	}
	g.pools[id] = p
}

func (g *Grid) floodIsland(start Coord) {
	id := g.nextIsland
	g.nextIsland++
	isl := &Island{id: id, coords: map[Coord]bool{}}
	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isl.coords[cur] {
			continue
		}
		cell := g.cellAt(cur)
		if !cell.rawIsWhite() || cell.region.valid() || cell.island.valid() {
			continue
		}
		isl.coords[cur] = true
		cell.island = id
		for _, n := range orthoNeighbors(cur) {
			if !g.inBounds(n) {
				continue
			}
			nc := g.cellAt(n)
			if nc.rawIsWhite() && !nc.region.valid() && !nc.island.valid() {
				stack = append(stack, n)
			}
		}
	}
	g.islands[id] = isl
}

func (g *Grid) floodGap(start Coord) {
	id := g.nextGap
	g.nextGap++
	gap := &Gap{
		id:            id,
		coords:        map[Coord]bool{},
		borderRegions: map[RegionID]bool{},
		borderIslands: map[IslandID]bool{},
	}
	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if gap.coords[cur] {
			continue
		}
		cell := g.cellAt(cur)
		if !cell.rawIsUnknown() || cell.gap.valid() {
			continue
		}
		gap.coords[cur] = true
		cell.gap = id

		for _, n := range orthoNeighbors(cur) {
			if !g.inBounds(n) {
				continue
			}
			nc := g.cellAt(n)
			switch {
			case nc.rawIsUnknown() && !nc.gap.valid():
				stack = append(stack, n)
			case nc.region.valid():
				gap.borderRegions[nc.region] = true
			case nc.island.valid():
				gap.borderIslands[nc.island] = true
			}
		}
	}

	// Islands already carrying a single-region constraint are
	// promoted into that region for the purposes of Gap connectivity
	// (spec §4.2).
	for islID := range gap.borderIslands {
		isl := g.islands[islID]
		for ic := range isl.coords {
			cell := g.cellAt(ic)
			if cell.constraint.kind == constraintMustBelongTo {
				gap.borderRegions[cell.constraint.region] = true
			}
		}
	}

	g.gaps[id] = gap
}

// deriveConstraints re-derives OneWhite/OneBlack constraints from
// scratch every pass (spec §4.7, supplemented from
// CNurikabe::Grid::setConstraints): a diagonal pair of cells with no
// number/white corner implies "one of these two must be white", and
// each Pool's unknown border implies "one of these must be black" on
// the uniquely bordering incomplete Region, when one exists.
func (g *Grid) deriveConstraints() {
	for _, r := range g.regions {
		r.oneWhite = nil
		r.oneBlack = nil
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			coord := Coord{r, c}
			se := coord.SouthEast()
			if !g.inBounds(se) {
				continue
			}
			a, b := coord.East(1), coord.South(1)
			if !g.inBounds(a) || !g.inBounds(b) {
				continue
			}
			if g.isNumberOrWhite(coord) || g.isNumberOrWhite(se) || g.isNumberOrWhite(a) || g.isNumberOrWhite(b) {
				continue
			}
			if !g.isUnknown(coord) || !g.isUnknown(se) {
				continue
			}
			id := uniqueRegionFor(g, []Coord{coord, se})
			if id.valid() {
				g.regions[id].oneWhite = append(g.regions[id].oneWhite, oneWhiteConstraint{coords: []Coord{coord, se}})
			}
		}
	}

	for _, p := range g.pools {
		border := g.poolUnknownBorder(p)
		if len(border) == 0 {
			continue
		}
		id := uniqueRegionFor(g, border)
		if id.valid() {
			g.regions[id].oneBlack = append(g.regions[id].oneBlack, oneBlackConstraint{coords: border})
		}
	}
}

// uniqueRegionFor returns the single incomplete RegionID that every
// coord in coords is constrained or reachable to, or noID if zero or
// more than one region qualifies.
func uniqueRegionFor(g *Grid, coords []Coord) RegionID {
	found := noID
	for _, c := range coords {
		cell := g.cellAt(c)
		var candidate RegionID = noID
		if cell.constraint.kind == constraintMustBelongTo {
			candidate = cell.constraint.region
		} else {
			reach := g.regionsReachableFrom(c, map[Coord]bool{})
			if len(reach) != 1 {
				return noID
			}
			for id := range reach {
				candidate = id
			}
		}
		if candidate == noID {
			return noID
		}
		if found == noID {
			found = candidate
		} else if found != candidate {
			return noID
		}
	}
	return found
}
