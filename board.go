package nurikabe

import "go.uber.org/zap"

// Grid owns the board and every derived structure built from it:
// Regions, Pools, Islands, Gaps, the hypothesis stack, and the
// tunables and collaborators the solver needs. Nothing outside Grid
// holds an owning reference to a Cell, Region, Pool, Island or Gap —
// callers address them by Coord or by id.
type Grid struct {
	rows, cols int
	cells      [][]Cell

	regions map[RegionID]*Region
	nextReg RegionID

	pools   map[PoolID]*Pool
	islands map[IslandID]*Island
	gaps    map[GapID]*Gap
	nextPool   PoolID
	nextIsland IslandID
	nextGap    GapID

	hyp hypothesisStack

	host Host

	log *zap.SugaredLogger
	cfg Config

	dirty bool

	// changed accumulates during the current top-level operation so
	// NotifyChanged fires at most once per public call (Solve fires it
	// at most once per iteration), mirroring the
	// "change batch" described in spec §5.
	changed bool
}

// GridOption configures a Grid at construction.
type GridOption func(*Grid)

// WithLogger injects a structured logger for internal diagnostics.
// Without it, a Grid logs nothing.
func WithLogger(l *zap.SugaredLogger) GridOption {
	return func(g *Grid) { g.log = l }
}

// WithConfig overrides the default engine tunables.
func WithConfig(cfg Config) GridOption {
	return func(g *Grid) { g.cfg = cfg }
}

// WithHost registers the host callbacks the solver drives during a
// solve (SetBusy, NotifyChanged, CheckBreak).
func WithHost(h Host) GridOption {
	return func(g *Grid) { g.host = h }
}

func newGrid(rows, cols int, opts ...GridOption) *Grid {
	g := &Grid{
		rows:    rows,
		cols:    cols,
		regions: map[RegionID]*Region{},
		pools:   map[PoolID]*Pool{},
		islands: map[IslandID]*Island{},
		gaps:    map[GapID]*Gap{},
		log:     nopLogger(),
		cfg:     DefaultConfig(),
		host:    noopHost{},
		dirty:   true,
	}
	g.cells = make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = newCell(Coord{r, c})
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rows and Cols report the board dimensions.
func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// inBounds reports whether c lies on the board.
func (g *Grid) inBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// cellAt returns a pointer to the stored cell at c. Callers must
// check inBounds first; cellAt panics otherwise, matching Board's
// "neighbor accessors return absent at edges" contract being enforced
// one level up by tryCellAt.
func (g *Grid) cellAt(c Coord) *Cell {
	return &g.cells[c.Row][c.Col]
}

// tryCellAt returns the cell at c and true, or (nil, false) if c is
// off the board — the "step(count) returns absent at edges" behavior
// from spec §4.1.
func (g *Grid) tryCellAt(c Coord) (*Cell, bool) {
	if !g.inBounds(c) {
		return nil, false
	}
	return g.cellAt(c), true
}

// atTopLevel reports whether no hypothesis is currently active.
func (g *Grid) atTopLevel() bool { return g.hyp.depth() == 0 }

// --- hypothesis-aware value predicates (spec §4.1) ---

// colorOf returns the effective color of the cell at c: the overlay's
// answer if c is Unknown at the stored level and a hypothesis is
// active and mentions it, else the stored value.
func (g *Grid) colorOf(c Coord) CellValue {
	cell := g.cellAt(c)
	if cell.value != Unknown {
		return cell.value
	}
	if ov, ok := g.hyp.top(); ok {
		if ov.isBlack(c) {
			return Black
		}
		if ov.isWhite(c) {
			return White
		}
	}
	return Unknown
}

func (g *Grid) isWhite(c Coord) bool         { return g.colorOf(c) == White }
func (g *Grid) isBlack(c Coord) bool         { return g.colorOf(c) == Black }
func (g *Grid) isUnknown(c Coord) bool       { return g.colorOf(c) == Unknown }
func (g *Grid) isNumber(c Coord) bool        { return g.cellAt(c).rawIsNumber() }
func (g *Grid) isNumberOrWhite(c Coord) bool { v := g.colorOf(c); return v == Number || v == White }

// --- mutation (spec §4.1, §5) ---

// setWhite colors an Unknown cell white. At the top level this
// mutates the stored cell and raises "changed"; under a hypothesis it
// only extends the top overlay.
func (g *Grid) setWhite(c Coord) stepStatus {
	return g.setColor(c, White)
}

// setBlack colors an Unknown cell black, with the same top-level vs.
// hypothesis split as setWhite.
func (g *Grid) setBlack(c Coord) stepStatus {
	return g.setColor(c, Black)
}

func (g *Grid) setColor(c Coord, v CellValue) stepStatus {
	assertTrue(v == White || v == Black, "setColor called with non-terminal value %v", v)

	cell := g.cellAt(c)
	if cell.rawIsNumber() {
		return statusNoChange
	}
	if !g.atTopLevel() {
		cur := g.colorOf(c)
		if cur == v {
			return statusNoChange
		}
		if cur != Unknown {
			return statusContradict
		}
		ov := &g.hyp.frames[len(g.hyp.frames)-1]
		if v == White {
			ov.white[c] = true
		} else {
			ov.black[c] = true
		}
		return statusChanged
	}

	if !cell.rawIsUnknown() {
		if cell.value == v {
			return statusNoChange
		}
		return statusContradict
	}
	cell.value = v
	for _, reg := range g.regions {
		reg.invalidate()
	}
	g.dirty = true
	g.changed = true
	g.log.Debugw("colored cell", "coord", c, "value", v)
	return statusChanged
}

// pushHypothesis opens a new overlay seeded with blacks/whites.
func (g *Grid) pushHypothesis(blacks, whites []Coord) {
	g.hyp.push(blacks, whites)
}

// popHypothesis discards the top overlay.
func (g *Grid) popHypothesis() {
	g.hyp.pop()
}

// checkBreak consults the host's cooperative cancellation hook.
func (g *Grid) checkBreak() bool {
	return g.host.CheckBreak()
}

func (g *Grid) flushChanged() {
	if g.changed {
		g.host.NotifyChanged()
		g.changed = false
	}
}
