package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFirstOrderCoversEveryCell(t *testing.T) {
	cfg := &Config{Width: 3, Height: 2, Period: 2}
	order := rowFirstOrder(cfg)
	require.Len(t, order, 3*2*2)
	assert.Equal(t, Coord{X: 0, Y: 0, T: 0}, order[0])
	assert.Equal(t, Coord{X: 2, Y: 1, T: 1}, order[len(order)-1])
}

func TestRowFirstOrderSkipsFixedColumnHalf(t *testing.T) {
	cfg := &Config{Width: 4, Height: 2, Period: 1, Symmetry: SymmetryD2Col}
	order := rowFirstOrder(cfg)
	require.Len(t, order, 2*2)
	for _, c := range order {
		assert.GreaterOrEqual(t, c.X, 2)
	}
}

func TestColumnFirstOrderCoversEveryCell(t *testing.T) {
	cfg := &Config{Width: 2, Height: 3, Period: 1}
	order := columnFirstOrder(cfg)
	require.Len(t, order, 2*3)
}

func TestDiagonalOrderSquareOnly(t *testing.T) {
	cfg := &Config{Width: 3, Height: 3, Period: 1}
	order := diagonalOrder(cfg)
	require.Len(t, order, 9)
}

func TestAutoSearchOrderPrefersNarrowerAxis(t *testing.T) {
	assert.Equal(t, SearchOrderColumn, autoSearchOrder(&Config{Width: 10, Height: 4}))
	assert.Equal(t, SearchOrderRow, autoSearchOrder(&Config{Width: 4, Height: 10}))
}

func TestAutoSearchOrderSquarePrefersDiagonalWidth(t *testing.T) {
	d := 2
	assert.Equal(t, SearchOrderDiagonal, autoSearchOrder(&Config{Width: 5, Height: 5, DiagonalWidth: &d}))
}

func TestIsFrontDisabledForFromVecOrKnownCells(t *testing.T) {
	cfg := &Config{Width: 4, Height: 4, Period: 1, KnownCells: []KnownCell{{Coord: Coord{}, State: Dead}}}
	assert.False(t, isFront(cfg, SearchOrderRow, false, Coord{X: 0, Y: 0, T: 0}))
}

func TestRowFrontFirstRowByDefault(t *testing.T) {
	cfg := &Config{Width: 4, Height: 4, Period: 1}
	assert.True(t, rowFront(cfg, false, Coord{X: 2, Y: 0, T: 0}))
	assert.False(t, rowFront(cfg, false, Coord{X: 2, Y: 1, T: 0}))
}
