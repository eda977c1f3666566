// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/numlin/solver"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// --config is given.
const DefaultConfigFile = "numlin.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// findConfigFile returns the explicit path, or DefaultConfigFile when it
// exists, or "".
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}

// envKey transforms NUMLIN_SOLVER__PIVOT_CHECK -> solver.pivot_check.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	return strings.ReplaceAll(s, "__", ".")
}

// Load loads configuration from defaults, file, environment and flags.
// flags may be nil; only flags that were explicitly set override lower layers.
// It returns the resolved config and the config file that was read ("" if none).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment variables (NUMLIN_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal and validate
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, used, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Solver.Iterations < 0 {
		return fmt.Errorf("solver.iterations=%d: %w", c.Solver.Iterations, ErrInvalidConfig)
	}
	if c.Solver.Tolerance < 0 || math.IsNaN(c.Solver.Tolerance) || math.IsInf(c.Solver.Tolerance, 0) {
		return fmt.Errorf("solver.tolerance=%g: %w", c.Solver.Tolerance, ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("output.format=%q: %w", c.Output.Format, ErrInvalidConfig)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision=%d: %w", c.Output.Precision, ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// Options translates the solver section into solver.Option values.
func (s SolverConfig) Options() []solver.Option {
	opts := make([]solver.Option, 0, 2)
	if s.PivotCheck {
		opts = append(opts, solver.WithPivotCheck())
	} else {
		opts = append(opts, solver.WithoutPivotCheck())
	}
	if s.Tolerance > 0 {
		opts = append(opts, solver.WithTolerance(s.Tolerance))
	}

	return opts
}
