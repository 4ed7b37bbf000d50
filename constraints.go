package nurikabe

// oneWhiteConstraint requires that at least one of Coords be white in
// any completion of the owning Region.
type oneWhiteConstraint struct {
	coords []Coord
}

// oneBlackConstraint requires that at least one of Coords be black
// (equivalently: not every coord in the set may end up inside the
// Region).
type oneBlackConstraint struct {
	coords []Coord
}

// satisfiedOutside reports whether c's OneBlack constraint is already
// satisfiable by some coord lying outside the candidate set in
// progress (pruning rule 2, spec §4.4).
func (c oneBlackConstraint) satisfiedOutside(inProgress map[Coord]bool) bool {
	for _, co := range c.coords {
		if !inProgress[co] {
			return true
		}
	}
	return false
}

// forcedBy reports whether none of a OneWhite constraint's coords
// are yet in the candidate set, and all of them border it — the
// "forced next expansion" case (spec §4.4 pruning rule 4).
func (c oneWhiteConstraint) forcedBy(inProgress map[Coord]bool) bool {
	anyInside := false
	for _, co := range c.coords {
		if inProgress[co] {
			anyInside = true
		}
	}
	if anyInside {
		return false
	}
	for _, co := range c.coords {
		touches := false
		for p := range inProgress {
			if p.Touches(co) {
				touches = true
				break
			}
		}
		if !touches {
			return false
		}
	}
	return true
}
