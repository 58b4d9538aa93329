package lifesearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotSaveLoadRoundTrip(t *testing.T) {
	cfg := Config{Width: 4, Height: 4, Period: 1, Rule: lifeRule()}
	w, err := Build(cfg)
	require.NoError(t, err)

	maxStep := uint64(8)
	w.Search(context.Background(), &maxStep)

	snap := w.Save()
	data, err := snap.Marshal()
	require.NoError(t, err)

	reloaded, err := LoadSnapshot(data)
	require.NoError(t, err)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want, err := w.GetCellState(Coord{X: x, Y: y, T: 0})
			require.NoError(t, err)
			got, err := reloaded.GetCellState(Coord{X: x, Y: y, T: 0})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestLoadSnapshotRejectsOutOfBoundsEntry(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, Period: 1, Rule: lifeRule()}
	snap := Snapshot{
		Config: cfg,
		Trail: []SnapshotEntry{
			{Coord: Coord{X: 5, Y: 0, T: 0}, State: Dead, ReasonKind: int(reasonKnown)},
		},
	}
	data, err := snap.Marshal()
	require.NoError(t, err)

	_, err = LoadSnapshot(data)
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
}
