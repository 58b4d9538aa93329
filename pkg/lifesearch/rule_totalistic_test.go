package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newLifeEngine() *totalisticEngine {
	return newTotalisticEngine(lifeRule())
}

func TestTotalisticBaseFactsFullyKnown(t *testing.T) {
	e := newLifeEngine()

	// Self dead, 3 alive neighbors: B3 fires, successor must be alive.
	d := totalisticDesc(5, 3, codeUnknown, codeDead)
	flags := e.lookupFlags(d)
	assert.NotZero(t, flags&FlagSuccAlive)
	assert.Zero(t, flags&FlagConflict)

	// Self dead, 2 alive neighbors: B3 does not fire, successor dead.
	d = totalisticDesc(6, 2, codeUnknown, codeDead)
	flags = e.lookupFlags(d)
	assert.NotZero(t, flags&FlagSuccDead)

	// Self alive, 2 alive neighbors: S23 survives.
	d = totalisticDesc(6, 2, codeUnknown, codeAlive)
	flags = e.lookupFlags(d)
	assert.NotZero(t, flags&FlagSuccAlive)

	// Self alive, 1 alive neighbor: does not survive.
	d = totalisticDesc(7, 1, codeUnknown, codeAlive)
	flags = e.lookupFlags(d)
	assert.NotZero(t, flags&FlagSuccDead)
}

func TestTotalisticConflictDetection(t *testing.T) {
	e := newLifeEngine()
	// Self dead, 3 alive neighbors forces successor alive; asserting the
	// successor is already known dead is a direct contradiction.
	d := totalisticDesc(5, 3, codeDead, codeDead)
	flags := e.lookupFlags(d)
	assert.NotZero(t, flags&FlagConflict)
}

func TestTotalisticInductiveNeighborForce(t *testing.T) {
	e := newLifeEngine()
	// Self dead, 2 known-dead neighbors, 1 known-alive, 5 unknown: the
	// known successor of alive forces exactly 3 alive total, so only the
	// completions with 2 of the 5 unknowns alive satisfy B3 — in this
	// corner (1 already alive, need 2 more from 5 unknown), neither "all
	// unknown resolve dead" nor "all resolve alive" is individually
	// forced, so no NBHD flag need hold; just check no conflict is
	// reported when it shouldn't be.
	d := totalisticDesc(2, 1, codeUnknown, codeDead)
	flags := e.lookupFlags(d)
	assert.Zero(t, flags&FlagConflict)
}

func TestTotalisticSelfCode(t *testing.T) {
	e := newLifeEngine()
	assert.Equal(t, codeDead, e.selfCode(Dead))
	assert.Equal(t, codeAlive, e.selfCode(Alive))
	assert.Equal(t, codeUnknown, e.selfCode(Unknown))
}

func TestTotalisticUpdateDescTracksCounts(t *testing.T) {
	e := newLifeEngine()
	d := e.newDesc(Dead)
	d = e.updateDesc(d, dirN, codeAlive)
	d = e.updateDesc(d, dirS, codeDead)
	dead, alive, succ, self := totalisticUnpack(d)
	assert.Equal(t, 1, dead)
	assert.Equal(t, 1, alive)
	assert.Equal(t, codeUnknown, succ)
	assert.Equal(t, codeDead, self)
}
