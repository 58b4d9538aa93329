package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lifeRule() RuleSpec {
	return RuleSpec{Kind: RuleTotalistic, Birth: []int{3}, Survive: []int{2, 3}, Gen: 2}
}

func TestConfigValidateDimensions(t *testing.T) {
	cfg := Config{Width: 0, Height: 5, Period: 1, Rule: lifeRule()}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "width", ce.Field)
}

func TestConfigValidateTransformRequiresSquare(t *testing.T) {
	cfg := Config{Width: 4, Height: 5, Period: 1, Transform: TransformR90, Rule: lifeRule()}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "transform", ce.Field)
}

func TestConfigValidateSymmetryRequiresSquare(t *testing.T) {
	cfg := Config{Width: 4, Height: 5, Period: 1, Symmetry: SymmetryC4, Rule: lifeRule()}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "symmetry", ce.Field)
}

func TestConfigValidateFromVecRequiresVec(t *testing.T) {
	cfg := Config{Width: 4, Height: 4, Period: 1, SearchOrder: SearchOrderFromVec, Rule: lifeRule()}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "search_order", ce.Field)
}

func TestConfigValidateGenTooSmall(t *testing.T) {
	rule := lifeRule()
	rule.Gen = 1
	cfg := Config{Width: 4, Height: 4, Period: 1, Rule: rule}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "rule.gen", ce.Field)
}

func TestConfigValidateKnownCellsOutOfBounds(t *testing.T) {
	cfg := Config{
		Width: 4, Height: 4, Period: 1, Rule: lifeRule(),
		KnownCells: []KnownCell{{Coord: Coord{X: 10, Y: 0, T: 0}, State: Dead}},
	}
	err := cfg.validate()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "known_cells", ce.Field)
}

func TestConfigValidateOK(t *testing.T) {
	cfg := Config{Width: 4, Height: 4, Period: 1, Rule: lifeRule()}
	assert.NoError(t, cfg.validate())
}

func TestIsGenRule(t *testing.T) {
	cfg := Config{Rule: RuleSpec{Gen: 2}}
	assert.False(t, cfg.isGenRule())
	cfg.Rule.Gen = 5
	assert.True(t, cfg.isGenRule())
}
