package ui

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata/internal/config"
)

func TestDefaultControlsResolve(t *testing.T) {
	cfg := config.Default()
	snap := cfg.Parameters()
	for _, c := range DefaultControls() {
		_, ok := snap.Find(c.Key)
		assert.True(t, ok, "control %s has no parameter", c.Key)
	}
}

func TestDefaultControlsContainDefaults(t *testing.T) {
	cfg := config.Default()
	snap := cfg.Parameters()
	for _, c := range DefaultControls() {
		p, ok := snap.Find(c.Key)
		require.True(t, ok, c.Key)
		v, err := strconv.ParseFloat(p.Value, 64)
		require.NoError(t, err)
		assert.True(t, v >= c.Min && v <= c.Max, "%s default %v outside [%v,%v]", c.Key, v, c.Min, c.Max)
	}
}

func TestAdjustRaisesMassifRadius(t *testing.T) {
	cfg := config.Default()
	var ctrl Control
	for _, c := range DefaultControls() {
		if c.Key == "mountains.radius_factor" {
			ctrl = c
		}
	}
	require.NotEmpty(t, ctrl.Key)

	changed, err := Adjust(&cfg, ctrl, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 0.77, cfg.Mountains.RadiusFactor, 1e-6)
}

func TestAdjustIntClampsToRange(t *testing.T) {
	cfg := config.Default()
	cfg.Thermal.Iterations = 1
	ctrl := Control{Key: "thermal.iterations", Step: 1, Min: 0, Max: 2}

	changed, err := Adjust(&cfg, ctrl, -1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, cfg.Thermal.Iterations)

	changed, err = Adjust(&cfg, ctrl, -1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "0", Value(cfg, ctrl))
}

func TestAdjustFloatSteps(t *testing.T) {
	cfg := config.Default()
	cfg.Lakes.Ceiling = 0.25
	ctrl := Control{Key: "lakes.ceiling", Step: 0.01, Min: 0, Max: 1}

	changed, err := Adjust(&cfg, ctrl, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.InDelta(t, 0.26, cfg.Lakes.Ceiling, 1e-6)
	assert.Equal(t, "0.26", Value(cfg, ctrl))
}

func TestAdjustUnknownKey(t *testing.T) {
	cfg := config.Default()
	changed, err := Adjust(&cfg, Control{Key: "nope"}, 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "--", Value(cfg, Control{Key: "nope"}))
}
