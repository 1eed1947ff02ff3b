package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"strata/internal/core"
)

type field struct {
	group string
	key   string
	v     reflect.Value
}

// fields walks c in declaration order and yields one entry per scalar leaf,
// keyed by its dotted yaml path (e.g. "rivers.max_length").
func (c *Config) fields() []field {
	var out []field
	var walk func(v reflect.Value, group, prefix string)
	walk = func(v reflect.Value, group, prefix string) {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			tag := strings.Split(t.Field(i).Tag.Get("yaml"), ",")[0]
			if tag == "" || tag == "-" {
				continue
			}
			fv := v.Field(i)
			if fv.Kind() == reflect.Struct {
				walk(fv, tag, prefix+tag+".")
				continue
			}
			out = append(out, field{group: group, key: prefix + tag, v: fv})
		}
	}
	walk(reflect.ValueOf(c).Elem(), "world", "")
	return out
}

// Parameters returns a snapshot of every tunable grouped by section.
func (c Config) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	idx := map[string]int{}
	for _, f := range c.fields() {
		p := core.Parameter{Key: f.key, Value: fmt.Sprint(f.v.Interface())}
		switch f.v.Kind() {
		case reflect.Bool:
			p.Type = core.ParamTypeBool
		case reflect.Float32, reflect.Float64:
			p.Type = core.ParamTypeFloat
		default:
			p.Type = core.ParamTypeInt
		}
		gi, ok := idx[f.group]
		if !ok {
			gi = len(snap.Groups)
			idx[f.group] = gi
			snap.Groups = append(snap.Groups, core.ParameterGroup{Name: f.group})
		}
		snap.Groups[gi].Params = append(snap.Groups[gi].Params, p)
	}
	return snap
}

// Set assigns value to the parameter at the dotted key.
func (c *Config) Set(key, value string) error {
	for _, f := range c.fields() {
		if f.key != key {
			continue
		}
		switch f.v.Kind() {
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
			}
			f.v.SetBool(b)
		case reflect.Float32, reflect.Float64:
			x, err := strconv.ParseFloat(value, f.v.Type().Bits())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
			}
			f.v.SetFloat(x)
		case reflect.Int, reflect.Int32, reflect.Int64:
			x, err := strconv.ParseInt(value, 10, f.v.Type().Bits())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
			}
			f.v.SetInt(x)
		case reflect.Uint32, reflect.Uint64:
			x, err := strconv.ParseUint(value, 10, f.v.Type().Bits())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
			}
			f.v.SetUint(x)
		default:
			return fmt.Errorf("%w: %s: unsupported kind %s", ErrInvalid, key, f.v.Kind())
		}
		return nil
	}
	return fmt.Errorf("%w: unknown key %q", ErrInvalid, key)
}

// Apply sets each key=value override in order and validates the result.
func (c *Config) Apply(overrides map[string]string, order []string) error {
	for _, k := range order {
		if err := c.Set(k, overrides[k]); err != nil {
			return err
		}
	}
	return c.Validate()
}
