// Package config handles naum.toml comparison settings.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"naum/internal/common"
	"naum/internal/compare"
	"naum/internal/match"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "naum.toml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents a naum.toml file.
type Config struct {
	Compare Compare `toml:"compare"`
	Report  Report  `toml:"report"`

	// Path is the file the configuration was loaded from, empty for defaults.
	Path string `toml:"-"`
}

// Compare configures the comparison engine.
type Compare struct {
	// Audience is "external" (default) or "internal".
	Audience string `toml:"audience"`
	// Jobs bounds parallelism, 0 = GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// LoadBearingAnnotations are annotation types whose changes always break.
	LoadBearingAnnotations []string `toml:"load_bearing_annotations"`
	// UncheckedExceptions extend the built-in unchecked exception list.
	UncheckedExceptions []string `toml:"unchecked_exceptions"`
	RenameHints         bool     `toml:"rename_hints"`
	MinRenameScore      float64  `toml:"min_rename_score"`
	MinRenameGap        float64  `toml:"min_rename_gap"`
}

// Report configures report output.
type Report struct {
	// FailOnBreaking makes `naum diff` exit non-zero on breaking changes.
	FailOnBreaking bool `toml:"fail_on_breaking"`
	// Color is auto, always or never.
	Color string `toml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Compare: Compare{
			Audience:       compare.AudienceExternal.String(),
			RenameHints:    true,
			MinRenameScore: match.DefaultMinScore,
			MinRenameGap:   match.DefaultMinGap,
		},
		Report: Report{
			FailOnBreaking: true,
			Color:          ColorAuto,
		},
	}
}

// Load parses the file at path over the defaults. Keys the file sets
// replace the defaults; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Path = path
	cfg.Compare.LoadBearingAnnotations = common.NormalizeNames(cfg.Compare.LoadBearingAnnotations)
	cfg.Compare.UncheckedExceptions = common.NormalizeNames(cfg.Compare.UncheckedExceptions)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// FindAndLoad walks up from startDir to find a naum.toml file and loads
// it. Without one, it returns Default().
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if _, err := compare.ParseAudience(c.Compare.Audience); err != nil {
		errs = append(errs, err)
	}
	if c.Compare.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Compare.Jobs))
	}
	if !common.InRange(0, c.Compare.MinRenameScore, 1) {
		errs = append(errs, fmt.Errorf("min_rename_score must be within [0, 1], got %g", c.Compare.MinRenameScore))
	}
	if !common.InRange(0, c.Compare.MinRenameGap, 1) {
		errs = append(errs, fmt.Errorf("min_rename_gap must be within [0, 1], got %g", c.Compare.MinRenameGap))
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Report.Color) {
		errs = append(errs, fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Report.Color))
	}

	return errors.Join(errs...)
}

// Policy builds the classification policy.
func (c *Config) Policy() (compare.Policy, error) {
	audience, err := compare.ParseAudience(c.Compare.Audience)
	if err != nil {
		return nil, err
	}

	return compare.DefaultPolicy{
		Audience:    audience,
		LoadBearing: c.Compare.LoadBearingAnnotations,
	}, nil
}

// CompareConfig builds the engine configuration.
func (c *Config) CompareConfig(logger *slog.Logger) (compare.Config, error) {
	policy, err := c.Policy()
	if err != nil {
		return compare.Config{}, err
	}

	cc := compare.DefaultConfig()
	cc.Jobs = c.Compare.Jobs
	cc.Policy = policy
	cc.UncheckedExceptions = common.UniqueInOrder(slices.Concat(cc.UncheckedExceptions, c.Compare.UncheckedExceptions))
	cc.RenameHints = c.Compare.RenameHints
	cc.MinRenameScore = c.Compare.MinRenameScore
	cc.MinRenameGap = c.Compare.MinRenameGap
	cc.Logger = logger

	return cc, nil
}
