// Package config describes the embedding runtime
// whose builtin math functions are being typed.
//
// A Runtime is loaded once at startup and never changes;
// every conditional registration is decided from its Facts.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Version is a major.minor runtime version.
type Version struct {
	Major, Minor int
}

// ParseVersion parses a version written as major.minor.
func ParseVersion(s string) (Version, error) {
	fields := strings.Split(strings.TrimSpace(s), ".")
	if len(fields) != 2 {
		return Version{}, errors.Errorf("bad version %q: want major.minor", s)
	}
	major, err := strconv.Atoi(fields[0])
	if err != nil {
		return Version{}, errors.Wrapf(err, "bad version %q", s)
	}
	minor, err := strconv.Atoi(fields[1])
	if err != nil {
		return Version{}, errors.Wrapf(err, "bad version %q", s)
	}
	if major < 0 || minor < 0 {
		return Version{}, errors.Errorf("bad version %q: negative", s)
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Less returns whether v is an earlier version than o.
func (v Version) Less(o Version) bool {
	return v.Major < o.Major || v.Major == o.Major && v.Minor < o.Minor
}

// A Runtime is a snapshot of the facts about the embedding runtime.
type Runtime struct {
	Name     string
	Version  Version
	Platform string
	// Overrides force individual Facts, by name, regardless of Version.
	Overrides map[string]bool
}

// Facts are the capabilities that gate builtin registration.
type Facts struct {
	// SpecialFuncs is whether erf, erfc, gamma, and lgamma exist.
	SpecialFuncs bool
	// Expm1 is whether expm1 exists.
	Expm1 bool
	// IntFloorCeil is whether floor and ceil return an integer.
	// If false they return a float.
	IntFloorCeil bool
	// Isfinite is whether isfinite exists.
	Isfinite bool
}

// Fact names accepted in Runtime.Overrides.
const (
	SpecialFuncs = "special_funcs"
	Expm1        = "expm1"
	IntFloorCeil = "int_floor_ceil"
	Isfinite     = "isfinite"
)

var factNames = []string{SpecialFuncs, Expm1, IntFloorCeil, Isfinite}

// Default returns the Runtime assumed when no configuration is given.
func Default() Runtime {
	return Runtime{
		Name:     "host",
		Version:  Version{Major: 3, Minor: 12},
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Facts returns the facts implied by the runtime version,
// with any Overrides applied.
func (rt Runtime) Facts() Facts {
	v := rt.Version
	f := Facts{
		SpecialFuncs: Version{2, 6}.Less(v),
		Expm1:        Version{2, 6}.Less(v),
		IntFloorCeil: Version{3, 0}.Less(v),
		Isfinite:     !v.Less(Version{3, 2}),
	}
	for name, on := range rt.Overrides {
		switch name {
		case SpecialFuncs:
			f.SpecialFuncs = on
		case Expm1:
			f.Expm1 = on
		case IntFloorCeil:
			f.IntFloorCeil = on
		case Isfinite:
			f.Isfinite = on
		}
	}
	return f
}

// Validate returns an error if the Runtime is malformed.
func (rt Runtime) Validate() error {
	if rt.Version.Major < 0 || rt.Version.Minor < 0 {
		return errors.Errorf("bad version %s: negative", rt.Version)
	}
	var unknown []string
	for name := range rt.Overrides {
		if !isFactName(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.Errorf("unknown features %s: want one of %s",
			strings.Join(unknown, ", "), strings.Join(factNames, ", "))
	}
	return nil
}

func isFactName(name string) bool {
	for _, n := range factNames {
		if n == name {
			return true
		}
	}
	return false
}

// file is the on-disk form of a Runtime.
type file struct {
	Name     string          `toml:"name" yaml:"name"`
	Version  string          `toml:"version" yaml:"version"`
	Platform string          `toml:"platform" yaml:"platform"`
	Features map[string]bool `toml:"features" yaml:"features"`
}

// Load reads a Runtime from a .toml, .yaml, or .yml file.
// Fields missing from the file keep their Default values.
func Load(path string) (Runtime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Runtime{}, errors.Wrap(err, "reading runtime config")
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return ParseTOML(path, data)
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	default:
		return Runtime{}, errors.Errorf("%s: unsupported config extension %q", path, ext)
	}
}

// ParseTOML parses a Runtime from TOML.
// The path is used only for error messages.
func ParseTOML(path string, data []byte) (Runtime, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Runtime{}, errors.Wrapf(err, "parsing %s", path)
	}
	return f.runtime(path)
}

// ParseYAML parses a Runtime from YAML.
// The path is used only for error messages.
func ParseYAML(path string, data []byte) (Runtime, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Runtime{}, errors.Wrapf(err, "parsing %s", path)
	}
	return f.runtime(path)
}

func (f *file) runtime(path string) (Runtime, error) {
	rt := Default()
	if f.Name != "" {
		rt.Name = f.Name
	}
	if f.Platform != "" {
		rt.Platform = f.Platform
	}
	if f.Version != "" {
		v, err := ParseVersion(f.Version)
		if err != nil {
			return Runtime{}, errors.Wrap(err, path)
		}
		rt.Version = v
	}
	if len(f.Features) > 0 {
		rt.Overrides = make(map[string]bool, len(f.Features))
		for k, v := range f.Features {
			rt.Overrides[k] = v
		}
	}
	if err := rt.Validate(); err != nil {
		return Runtime{}, errors.Wrap(err, path)
	}
	return rt, nil
}
