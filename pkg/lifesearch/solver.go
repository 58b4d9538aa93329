package lifesearch

import "context"

// Solver is the capability set a caller needs to drive and inspect a
// search, independent of which rule family and algorithm underlie it.
// Where the polymorphic dispatch this is grounded on distinguishes rule
// and algorithm combinations with a closed set of enum variants, ruleEngine
// already erases that distinction at runtime here: every RuleKind and Gen
// combination produces the same concrete *World, so Solver needs no
// variant enum of its own.
type Solver interface {
	Search(ctx context.Context, maxStep *uint64) Status
	GetCellState(coord Coord) (State, error)
	Config() *Config
	IsGenRule() bool
	IsB0Rule() bool
	CellCountGen(t int) int
	CellCount() int
	Conflicts() uint64
	SetMaxCellCount(v *int)
	Stats() SearchMonitor
	Save() Snapshot
	RLEGen(t int) string
	PlaintextGen(t int) string
}

// NewSolver validates cfg and builds the Solver for it. It is a thin,
// more discoverable alias for Build: every rule-family combination
// dispatches through the same constructor since *World already
// implements Solver regardless of which ruleEngine it was built with.
func NewSolver(cfg Config) (Solver, error) {
	return Build(cfg)
}

var _ Solver = (*World)(nil)
