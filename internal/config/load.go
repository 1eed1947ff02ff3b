package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/osfs"
	"gopkg.in/src-d/go-billy.v4/util"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from fs and overlays it on Default. Size-derived
// values are recomputed from the file's dimensions unless the file sets them.
func Load(fs billy.Filesystem, path string) (Config, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return Config{}, err
	}
	return Parse(raw)
}

// LoadFile reads a YAML config from the local filesystem.
func LoadFile(path string) (Config, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return Load(osfs.New(dir), name)
}

// Parse decodes YAML over Default.
func Parse(raw []byte) (Config, error) {
	var probe struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	c := Default()
	w, h := c.Width, c.Height
	if probe.Width > 0 {
		w = probe.Width
	}
	if probe.Height > 0 {
		h = probe.Height
	}
	c = c.ForSize(w, h)

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes c as YAML to fs.
func Save(fs billy.Filesystem, path string, c Config) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return util.WriteFile(fs, path, raw, 0o644)
}
