package nurikabe

import assert "github.com/arl/assertgo"

// assertTrue guards internal invariants that would indicate a bug in
// the solver itself (a non-terminal color passed to setColor, a
// popped-too-far hypothesis stack) rather than an unsolvable puzzle — the same distinction the
// teacher library draws between assert.True and a returned error.
func assertTrue(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}
