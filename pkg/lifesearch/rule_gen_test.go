package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRule() RuleSpec {
	return RuleSpec{Kind: RuleTotalistic, Birth: []int{3}, Survive: []int{2, 3}, Gen: 3}
}

func TestGenCodeOnlyCountsAliveAsAlive(t *testing.T) {
	assert.Equal(t, codeUnknown, genCode(Unknown))
	assert.Equal(t, codeDead, genCode(Dead))
	assert.Equal(t, codeAlive, genCode(Alive))
	assert.Equal(t, codeDead, genCode(Dying(2)))
}

func TestStateOfCodeRoundTripsBinaryInformation(t *testing.T) {
	assert.Equal(t, Dead, stateOfCode(codeDead))
	assert.Equal(t, Alive, stateOfCode(codeAlive))
	assert.Equal(t, Unknown, stateOfCode(codeUnknown))
}

func TestGenEngineSelfCodeIgnoresDyingSubstate(t *testing.T) {
	e := newGenEngine(newTotalisticEngine(genRule()), 3)
	assert.Equal(t, codeAlive, e.selfCode(Alive))
	assert.Equal(t, codeDead, e.selfCode(Dying(2)))
	assert.Equal(t, codeDead, e.selfCode(Dead))
}

// An isolated alive cell with no live neighbors fails to survive under
// B3/S23, but a Generations rule routes it through the first dying state
// rather than straight to Dead.
func TestGenEngineConsistifyAliveWithoutSurvivalForcesFirstDyingState(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, Period: 4, Rule: genRule()}
	w, err := Build(cfg)
	require.NoError(t, err)

	id0 := cellID(coordIndex(&w.cfg, 0, 0, 0))
	require.True(t, w.setCell(id0, Alive, reason{kind: reasonKnown}))
	require.True(t, w.engine.consistify(w, id0))

	got, err := w.GetCellState(Coord{X: 0, Y: 0, T: 1})
	require.NoError(t, err)
	assert.Equal(t, Dying(2), got)
}

// A cell already known to be dying advances deterministically to the next
// dying sub-state (or Dead, once it reaches gen-1), independent of its
// neighbors.
func TestGenEngineConsistifyDyingAdvancesDeterministically(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, Period: 4, Rule: genRule()}
	w, err := Build(cfg)
	require.NoError(t, err)

	id0 := cellID(coordIndex(&w.cfg, 0, 0, 0))
	require.True(t, w.setCell(id0, Dying(2), reason{kind: reasonKnown}))
	require.True(t, w.engine.consistify(w, id0))

	got, err := w.GetCellState(Coord{X: 0, Y: 0, T: 1})
	require.NoError(t, err)
	assert.Equal(t, Dead, got)
}
