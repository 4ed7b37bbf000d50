package nurikabe

// checkValid is the global validity check of spec §4.6. It is
// self-contained over colorOf so it gives a correct answer whether or
// not a hypothesis is active, independent of the grid's cached
// Pool/Island/Gap partitions (which are only ever rebuilt from the
// top-level board).
func (g *Grid) checkValid() bool {
	if g.hasBlackSquare() {
		return false
	}
	if g.hasSurroundedWhite() {
		return false
	}
	if !g.regionsWithinBounds() {
		return false
	}
	if !g.poolsHaveExit() {
		return false
	}
	return true
}

func (g *Grid) hasBlackSquare() bool {
	for r := 0; r < g.rows-1; r++ {
		for c := 0; c < g.cols-1; c++ {
			a := Coord{r, c}
			if g.isBlack(a) && g.isBlack(a.East(1)) && g.isBlack(a.South(1)) && g.isBlack(a.SouthEast()) {
				return true
			}
		}
	}
	return false
}

func (g *Grid) hasSurroundedWhite() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			coord := Coord{r, c}
			if !g.isWhite(coord) {
				continue
			}
			if g.whiteBelongsToSolvedOne(coord) {
				continue
			}
			surrounded := true
			any := false
			for _, n := range orthoNeighbors(coord) {
				if !g.inBounds(n) {
					continue
				}
				any = true
				if !g.isBlack(n) {
					surrounded = false
				}
			}
			if any && surrounded {
				return true
			}
		}
	}
	return false
}

// whiteBelongsToSolvedOne reports whether coord is the sole cell of a
// size-1 region (a Number==1 with no other white cells), which is
// allowed to be fully black-surrounded.
func (g *Grid) whiteBelongsToSolvedOne(coord Coord) bool {
	cell := g.cellAt(coord)
	return cell.rawIsNumber() && cell.num == 1
}

// regionsWithinBounds checks every Region's size against its value
// and, for incomplete regions, that an Unknown neighbor exists and a
// non-black path exists within distance N of the number.
func (g *Grid) regionsWithinBounds() bool {
	for _, r := range g.regions {
		size := g.regionColorSize(r)
		if size > r.value {
			return false
		}
		if size == r.value {
			continue
		}
		if !g.regionHasExit(r) {
			return false
		}
	}
	return true
}

// regionColorSize counts the cells currently White-or-Number and
// connected to r's number under the active color view (hypothesis-
// aware), which may exceed r.coords (a stale, top-level-only cache)
// while a hypothesis is active.
func (g *Grid) regionColorSize(r *Region) int {
	visited := map[Coord]bool{r.numberCell: true}
	stack := []Coord{r.numberCell}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range orthoNeighbors(cur) {
			if !g.inBounds(n) || visited[n] {
				continue
			}
			if g.isWhite(n) {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited)
}

func (g *Grid) regionHasExit(r *Region) bool {
	hasUnknownNeighbor := false
	visited := map[Coord]bool{r.numberCell: true}
	stack := []Coord{r.numberCell}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range orthoNeighbors(cur) {
			if !g.inBounds(n) {
				continue
			}
			if g.isUnknown(n) {
				hasUnknownNeighbor = true
			}
			if g.isWhite(n) && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	if !hasUnknownNeighbor {
		return false
	}
	reachable := false
	var walk func(c Coord, budget int)
	walk = func(c Coord, budget int) {
		if reachable || budget < 0 {
			return
		}
		for _, n := range orthoNeighbors(c) {
			if !g.inBounds(n) {
				continue
			}
			if g.isBlack(n) {
				continue
			}
			if n == r.numberCell {
				continue
			}
			reachable = true
			if budget > 0 {
				walk(n, budget-1)
			}
		}
	}
	walk(r.numberCell, r.value)
	return reachable
}

// poolsHaveExit floods the current (hypothesis-aware) black partition
// and requires every pool to border at least one Unknown cell, unless
// the board is fully solved and only one pool remains.
func (g *Grid) poolsHaveExit() bool {
	visited := map[Coord]bool{}
	poolCount := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			start := Coord{r, c}
			if visited[start] || !g.isBlack(start) {
				continue
			}
			poolCount++
			hasExit := false
			stack := []Coord{start}
			visited[start] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, n := range orthoNeighbors(cur) {
					if !g.inBounds(n) {
						continue
					}
					if g.isUnknown(n) {
						hasExit = true
					}
					if g.isBlack(n) && !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
			if !hasExit && !(poolCount == 1 && g.boardFullyColored()) {
				return false
			}
		}
	}
	if poolCount > 1 && g.boardFullyColored() {
		return false
	}
	return true
}

// boardFullyColored reports whether no Unknown cell remains under the
// active color view.
func (g *Grid) boardFullyColored() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.isUnknown(Coord{r, c}) {
				return false
			}
		}
	}
	return true
}
