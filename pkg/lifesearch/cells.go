// Package lifesearch implements a constraint-propagation and backtracking
// search engine for still lifes, oscillators, and spaceships in Life-like
// two-dimensional cellular automata.
package lifesearch

import "fmt"

// Coord identifies one site in the three-dimensional spacetime world.
type Coord struct {
	X, Y, T int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.T)
}

// State is a cell's value. Non-negative values are concrete states;
// Unknown marks a cell that has not yet been assigned.
type State int

const (
	// Unknown marks a cell with no assigned state.
	Unknown State = -1
	// Dead is the quiescent state, present in every rule family.
	Dead State = 0
	// Alive is the live state. For Generations rules a cell additionally
	// passes through Dying(2)..Dying(gen-1) on its way back to Dead.
	Alive State = 1
)

// Dying returns the state for the i-th dying generation of a Generations
// rule, i ranging over 2..gen-1.
func Dying(i int) State { return State(i) }

// IsDying reports whether s is a Generations dying state (neither dead,
// alive, nor unknown).
func (s State) IsDying() bool { return s >= 2 }

func (s State) String() string {
	switch {
	case s == Unknown:
		return "unknown"
	case s == Dead:
		return "dead"
	case s == Alive:
		return "alive"
	default:
		return fmt.Sprintf("dying(%d)", int(s))
	}
}

// cellID indexes into World.cells. outOfWorld marks a neighbor, predecessor,
// or successor link that resolves outside the finite spacetime box; reads
// through it fall back to the generation's background state instead of a
// real cell.
type cellID int32

const outOfWorld cellID = -1

// neighbor direction indices into Cell.nbhd, in fixed Moore order. The
// opposite of direction i is 7-i; descriptor updates use this to find the
// slot a changed cell occupies in each of its neighbors' own descriptors.
const (
	dirNW = iota
	dirN
	dirNE
	dirW
	dirE
	dirSW
	dirS
	dirSE
)

// cell is one site of the spacetime graph. The graph owns every cell in a
// flat slice; pred/succ/nbhd/sym links are indices into that slice (or
// outOfWorld) and must never outlive it.
type cell struct {
	coord Coord

	state State
	desc  desc
	// succState tracks the exact Generations successor value (including
	// which dying sub-state), since desc only ever encodes a binary
	// alive/not-alive successor bit.
	succState State

	pred, succ cellID
	nbhd       [8]cellID
	sym        []cellID

	isFront bool
	// next links this cell to the following one in the fixed branching
	// order (built once, at construction, over every cell the config
	// doesn't already fix); order is its position in that sequence. Both
	// are immutable once set. order is -1 for cells outside the chain
	// (already forced at construction, or excluded by a symmetry that
	// already determines their state from an earlier orbit member).
	next  cellID
	order int32
}

// reason explains why a cell transitioned from unknown to known, and drives
// how retreat() undoes or advances past it.
type reason struct {
	kind reasonKind
	n    int // remaining states to try, only meaningful for tryAnother
}

type reasonKind int

const (
	reasonKnown reasonKind = iota
	reasonDecide
	reasonDeduce
	reasonTryAnother
)

func (r reason) String() string {
	switch r.kind {
	case reasonKnown:
		return "known"
	case reasonDecide:
		return "decide"
	case reasonDeduce:
		return "deduce"
	default:
		return fmt.Sprintf("try-another(%d)", r.n)
	}
}

// trailEntry records one state assignment so it can be undone on backtrack.
type trailEntry struct {
	cell   cellID
	reason reason
}
