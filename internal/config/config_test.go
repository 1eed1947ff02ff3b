package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5000/80, c.Rivers.Sources)
	assert.Equal(t, 10000, c.Rivers.MaxLength)
	assert.Equal(t, int32(1000), c.SeedStride)
}

func TestForSizeRecomputesDerived(t *testing.T) {
	c := Default().ForSize(400, 200)
	assert.Equal(t, 5, c.Rivers.Sources)
	assert.Equal(t, 600, c.Rivers.MaxLength)
	assert.Equal(t, 400, c.Width)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	c := Default()
	c.Width = 0
	c.Base.Octaves = 0
	c.Lakes.Ceiling = 2
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	for _, f := range []string{"width", "base.octaves", "lakes.ceiling"} {
		assert.Contains(t, err.Error(), f)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	fs := memfs.New()
	doc := []byte("width: 160\nheight: 120\nseed: 7\nthermal:\n  iterations: 5\n")
	require.NoError(t, util.WriteFile(fs, "terrain.yaml", doc, 0o644))

	c, err := Load(fs, "terrain.yaml")
	require.NoError(t, err)
	assert.Equal(t, 160, c.Width)
	assert.Equal(t, uint32(7), c.Seed)
	assert.Equal(t, 5, c.Thermal.Iterations)
	assert.Equal(t, float32(0.02), c.Thermal.Talus)
	assert.Equal(t, 2, c.Rivers.Sources)
	assert.Equal(t, 280, c.Rivers.MaxLength)
}

func TestLoadRejectsUnknownAndInvalid(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "bad.yaml", []byte("widht: 5\n"), 0o644))
	_, err := Load(fs, "bad.yaml")
	assert.Error(t, err)

	require.NoError(t, util.WriteFile(fs, "neg.yaml", []byte("rivers:\n  width_tiles: 0\n"), 0o644))
	_, err = Load(fs, "neg.yaml")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(fs, "missing.yaml")
	assert.Error(t, err)
}

func TestLoadReadsNestedAndEmptyFiles(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "configs/small.yaml", []byte("width: 80\nheight: 40\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "empty.yaml", nil, 0o644))

	c, err := Load(fs, "configs/small.yaml")
	require.NoError(t, err)
	assert.Equal(t, 80, c.Width)
	assert.Equal(t, 1, c.Rivers.Sources)

	c, err = Load(fs, "empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveRoundTripsThroughLoad(t *testing.T) {
	fs := memfs.New()
	c := Default().ForSize(320, 240)
	c.Seed = 99
	require.NoError(t, Save(fs, "out.yaml", c))
	got, err := Load(fs, "out.yaml")
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSetAndParameters(t *testing.T) {
	c := Default()
	require.NoError(t, c.Set("rivers.max_length", "42"))
	require.NoError(t, c.Set("hydraulic.ke", "0.5"))
	require.NoError(t, c.Set("seed", "12"))
	require.NoError(t, c.Set("mountains.enabled", "false"))
	assert.Equal(t, 42, c.Rivers.MaxLength)
	assert.Equal(t, float32(0.5), c.Hydraulic.Ke)
	assert.Equal(t, uint32(12), c.Seed)
	assert.False(t, c.Mountains.Enabled)

	assert.ErrorIs(t, c.Set("nope", "1"), ErrInvalid)
	assert.ErrorIs(t, c.Set("thermal.iterations", "x"), ErrInvalid)

	snap := c.Parameters()
	p, ok := snap.Find("rivers.max_length")
	require.True(t, ok)
	assert.Equal(t, "42", p.Value)
	p, ok = snap.Find("lakes.ceiling")
	require.True(t, ok)
	assert.Equal(t, "float", string(p.Type))
	assert.Equal(t, "world", snap.Groups[0].Name)
}

func TestApplyValidates(t *testing.T) {
	c := Default()
	err := c.Apply(map[string]string{"width": "-3"}, []string{"width"})
	assert.ErrorIs(t, err, ErrInvalid)
}
