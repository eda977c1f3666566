// SPDX-License-Identifier: MIT

// Package config loads numlin CLI configuration.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

// Config is the fully resolved CLI configuration.
type Config struct {
	Solver SolverConfig `koanf:"solver"`
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
}

// SolverConfig holds Gauss-Seidel settings.
type SolverConfig struct {
	Iterations int     `koanf:"iterations"`  // sweep budget, >= 0
	Tolerance  float64 `koanf:"tolerance"`   // early-stop threshold; 0 disables
	PivotCheck bool    `koanf:"pivot_check"` // reject zero diagonal entries
}

// OutputConfig controls how matrices are printed.
type OutputConfig struct {
	Format    string `koanf:"format"`    // table | plain
	Precision int    `koanf:"precision"` // digits after the decimal point; -1 = shortest
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}
