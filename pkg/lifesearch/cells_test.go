package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "dead", Dead.String())
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dying(3)", Dying(3).String())
}

func TestStateIsDying(t *testing.T) {
	assert.False(t, Unknown.IsDying())
	assert.False(t, Dead.IsDying())
	assert.False(t, Alive.IsDying())
	assert.True(t, Dying(2).IsDying())
	assert.True(t, Dying(5).IsDying())
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "(1,2,3)", Coord{X: 1, Y: 2, T: 3}.String())
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "known", reason{kind: reasonKnown}.String())
	assert.Equal(t, "decide", reason{kind: reasonDecide}.String())
	assert.Equal(t, "deduce", reason{kind: reasonDeduce}.String())
	assert.Equal(t, "try-another(2)", reason{kind: reasonTryAnother, n: 2}.String())
}
