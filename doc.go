// Package nurikabe implements the deductive solver core of a Nurikabe
// puzzle engine.
//
// Nurikabe is a grid puzzle: every cell is either white (part of a
// numbered island) or black (part of a single connected sea). Each
// numbered cell gives the size of the island it belongs to. The
// solver repeatedly (1) derives forced cell colors from local rules,
// (2) enumerates candidate completions for each incomplete island
// under the constraints collected so far, and (3) intersects those
// completions to extract newly forced cells, until it reaches a fixed
// point.
//
// The package does not include a GUI, a puzzle generator, or puzzle
// file/bundle loading — those are external collaborators that talk to
// the solver only through the Host interface and the Solver API (see
// Grid and Host).
package nurikabe
