package app

import (
	"flag"
	"fmt"
	"math"
	"strings"

	billy "gopkg.in/src-d/go-billy.v4"

	"strata/internal/config"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one override.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Flags holds the command-line options shared by the terrain binaries.
type Flags struct {
	ConfigPath string
	Width      int
	Height     int
	Seed       int64
	Workers    int
	Sets       KVList
}

// NewFlags returns Flags whose zero-ish values defer to the config file.
func NewFlags() *Flags {
	return &Flags{Seed: -1}
}

// Bind attaches the flags to fs.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML configuration file")
	fs.IntVar(&f.Width, "w", f.Width, "world width (0 keeps the configured value)")
	fs.IntVar(&f.Height, "h", f.Height, "world height (0 keeps the configured value)")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "base seed (-1 keeps the configured value)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "worker goroutines (0 uses GOMAXPROCS)")
	fs.Var(&f.Sets, "set", "parameter override in key=value form (repeatable)")
}

// Resolve builds the final configuration. A relative ConfigPath is read from
// root, or from the working directory when root is nil.
func (f *Flags) Resolve(root billy.Filesystem) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		var err error
		if root == nil {
			cfg, err = config.LoadFile(f.ConfigPath)
		} else {
			cfg, err = config.Load(root, f.ConfigPath)
		}
		if err != nil {
			return config.Config{}, fmt.Errorf("load %s: %w", f.ConfigPath, err)
		}
	}
	if f.Width > 0 || f.Height > 0 {
		w, h := cfg.Width, cfg.Height
		if f.Width > 0 {
			w = f.Width
		}
		if f.Height > 0 {
			h = f.Height
		}
		cfg = cfg.ForSize(w, h)
	}
	if f.Seed >= 0 {
		if f.Seed > math.MaxUint32 {
			return config.Config{}, fmt.Errorf("%w: seed %d exceeds 32 bits", config.ErrInvalid, f.Seed)
		}
		cfg.Seed = uint32(f.Seed)
	}
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}

	overrides := map[string]string{}
	var order []string
	for _, kv := range f.Sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return config.Config{}, fmt.Errorf("%w: override %q is not key=value", config.ErrInvalid, kv)
		}
		k = strings.TrimSpace(k)
		if _, seen := overrides[k]; !seen {
			order = append(order, k)
		}
		overrides[k] = strings.TrimSpace(v)
	}
	if err := cfg.Apply(overrides, order); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
