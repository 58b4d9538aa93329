package lifesearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDefaultConfigFindsAllDeadStillLife(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Period: 1, Rule: lifeRule()}
	w, err := Build(cfg)
	require.NoError(t, err)

	status := w.Search(context.Background(), nil)
	assert.Equal(t, StatusFound, status)
	assert.Equal(t, uint64(0), w.Conflicts())

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s, err := w.GetCellState(Coord{X: x, Y: y, T: 0})
			require.NoError(t, err)
			assert.Equal(t, Dead, s)
		}
	}
}

func TestSearchFiveByFivePeriodThreeNoTranslationFindsNone(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Period: 3, Rule: lifeRule(), NonEmptyFront: true}
	w, err := Build(cfg)
	require.NoError(t, err)

	status := w.Search(context.Background(), nil)
	assert.Equal(t, StatusNone, status)
}

func TestSearchSixteenByFivePeriodThreeSpaceshipReplaysReferenceGrid(t *testing.T) {
	reference := []string{
		"........O.......",
		".OO.OOO.OOO.....",
		".OO....O..OO.OO.",
		"O..O.OO...O..OO.",
		"............O..O",
	}
	var known []KnownCell
	for y, row := range reference {
		for x, ch := range row {
			state := Dead
			if ch == 'O' {
				state = Alive
			}
			known = append(known, KnownCell{Coord: Coord{X: x, Y: y, T: 0}, State: state})
		}
	}

	cfg := Config{
		Width: 16, Height: 5, Period: 3,
		Dy:         1,
		Rule:       lifeRule(),
		KnownCells: known,
	}
	w, err := Build(cfg)
	require.NoError(t, err)

	maxStep := uint64(1_000_000)
	status := w.Search(context.Background(), &maxStep)
	assert.Equal(t, StatusFound, status)

	for y, row := range reference {
		for x, ch := range row {
			want := Dead
			if ch == 'O' {
				want = Alive
			}
			got, err := w.GetCellState(Coord{X: x, Y: y, T: 0})
			require.NoError(t, err)
			assert.Equalf(t, want, got, "cell (%d,%d)", x, y)
		}
	}
}

func TestConflictsNeverDecrease(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Period: 1, Rule: lifeRule(), NewState: ChooseAlive}
	w, err := Build(cfg)
	require.NoError(t, err)

	maxStep := uint64(4)
	var last uint64
	for i := 0; i < 20; i++ {
		w.Search(context.Background(), &maxStep)
		assert.GreaterOrEqual(t, w.Conflicts(), last)
		last = w.Conflicts()
		if w.status == StatusFound || w.status == StatusNone {
			break
		}
	}
}

func TestBuildRejectsContradictoryKnownCells(t *testing.T) {
	cfg := Config{
		Width: 2, Height: 2, Period: 1, Rule: lifeRule(),
		KnownCells: []KnownCell{
			{Coord: Coord{X: 0, Y: 0, T: 0}, State: Dead},
			{Coord: Coord{X: 0, Y: 0, T: 0}, State: Alive},
		},
	}
	_, err := Build(cfg)
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
}

func TestGetCellStateOutOfBounds(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, Period: 1, Rule: lifeRule()}
	w, err := Build(cfg)
	require.NoError(t, err)

	_, err = w.GetCellState(Coord{X: 5, Y: 0, T: 0})
	require.Error(t, err)
	var oe *OutOfBoundsError
	require.ErrorAs(t, err, &oe)
}
