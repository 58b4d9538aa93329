package lifesearch

// desc is the opaque neighborhood descriptor used as an index into the
// precomputed implication table. Its bit layout is rule-kind specific; see
// rule_totalistic.go and rule_ntlife.go.
type desc uint32

// stateCode is the 2-bit encoding used for self/successor/neighbor slots
// inside a descriptor: 0b10 = dead, 0b01 = alive, 0b00 = unknown. This
// mirrors the totalistic layout directly; codeOf/stateOfCode translate
// between it and State.
type stateCode uint32

const (
	codeUnknown stateCode = 0b00
	codeAlive   stateCode = 0b01
	codeDead    stateCode = 0b10
)

// codeOf maps a binary (non-Generations-aware) state to its 2-bit code.
// Generations dying states collapse to "alive" here, matching the base
// descriptor's binary view of aliveness; rule_gen.go tracks the exact
// dying sub-state separately.
func codeOf(s State) stateCode {
	switch {
	case s == Unknown:
		return codeUnknown
	case s == Dead:
		return codeDead
	default:
		return codeAlive
	}
}

// ImplFlags are the forced consequences the implication table reports for
// one descriptor.
type ImplFlags uint16

const (
	FlagConflict ImplFlags = 1 << iota
	FlagSuccAlive
	FlagSuccDead
	FlagSelfAlive
	FlagSelfDead
	FlagNbhdAlive
	FlagNbhdDead
)

const (
	FlagSucc = FlagSuccAlive | FlagSuccDead
	FlagSelf = FlagSelfAlive | FlagSelfDead
	FlagNbhd = FlagNbhdAlive | FlagNbhdDead
)

// ruleEngine is the minimal capability set a rule-and-algorithm pairing
// must expose to the solver loop, per the polymorphism design in the
// design notes: a tagged variant with static dispatch, descriptor layout
// free to differ per implementation.
type ruleEngine interface {
	// hasB0 reports whether the rule's birth set contains 0.
	hasB0() bool
	// genCount is the number of distinct states (2 for non-Generations).
	genCount() int
	// newDesc builds the initial descriptor for a cell in the given
	// self-state with all eight neighbors and the predecessor's
	// successor slot unknown.
	newDesc(self State) desc
	// updateDesc returns the descriptor that results from changing one
	// neighbor-position slot (or the self/succ slot, via the sentinel
	// positions below) from oldCode to newCode.
	updateDesc(d desc, pos int, newCode stateCode) desc
	// consistify looks up the implication table for c's descriptor and
	// applies every forced consequence it can to the world, reporting a
	// conflict via ok=false.
	consistify(w *World, c cellID) (ok bool)
	// lookupFlags returns the shared conflict/succ/self flags for a raw
	// descriptor, without applying them. Used directly by the Generations
	// overlay, which needs the flags without the binary engine's own
	// self/successor assignment (Generations reinterprets them).
	lookupFlags(d desc) ImplFlags
	// lookupNbhd returns the forced state, if any, for neighbor position i
	// (0..7) of a raw descriptor.
	lookupNbhd(d desc, i int) stateCode
	// selfCode maps a concrete State to the 2-bit code this engine's
	// descriptors use to record it. Binary engines use codeOf directly;
	// the Generations overlay counts only Alive as alive.
	selfCode(s State) stateCode
}

// Pseudo-positions passed to updateDesc for the self and successor slots,
// distinguished from the eight real neighbor directions 0..7.
const (
	posSelf = 8
	posSucc = 9
)
