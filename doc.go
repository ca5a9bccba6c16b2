// Package ndp implements a non-deterministic SAT-solving engine for the
// restricted class of Boolean formulas produced by Purdom-Sabry
// integer-multiplication circuits.
//
// Given a CNF encoding of input_number = FACT1 * FACT2, the package finds a
// satisfying assignment and decodes it back into the two factors; the
// absence of any satisfying assignment certifies input_number as prime.
//
// The search is a hybrid of a sequential breadth-first expansion (Expand)
// that grows a frontier of partial assignments, and a parallel depth-first
// phase (Solve) that races a worker pool over that frontier to find one
// satisfying assignment. Neither phase performs conflict-driven learning,
// watched literals, or restarts; see the resolution splitter (Split) for the
// only propagation this solver does.
package ndp
