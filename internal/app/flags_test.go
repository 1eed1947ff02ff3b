package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"strata/internal/config"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := NewFlags()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return f
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := parse(t).Resolve(memfs.New())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "world.yaml", []byte("width: 400\nheight: 300\nseed: 9\n"), 0o644))

	f := parse(t, "-config", "world.yaml", "-h", "200", "-seed", "77", "-workers", "2",
		"-set", "rivers.sources=3", "-set", "lakes.ceiling=0.3", "-set", "rivers.sources=4")
	cfg, err := f.Resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, uint32(77), cfg.Seed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 4, cfg.Rivers.Sources)
	assert.Equal(t, 600, cfg.Rivers.MaxLength)
	assert.InDelta(t, 0.3, cfg.Lakes.Ceiling, 1e-6)
}

func TestResolveRejectsBadInput(t *testing.T) {
	_, err := parse(t, "-set", "rivers.sources").Resolve(memfs.New())
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-set", "nope.key=1").Resolve(memfs.New())
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-seed", "5000000000").Resolve(memfs.New())
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-config", "missing.yaml").Resolve(memfs.New())
	assert.Error(t, err)
}

func TestResolveReadsLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 240\nheight: 160\n"), 0o644))

	cfg, err := parse(t, "-config", path).Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 3, cfg.Rivers.Sources)
}
