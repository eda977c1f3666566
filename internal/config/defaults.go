// SPDX-License-Identifier: MIT

package config

// Default values for configuration.
const (
	DefaultIterations = 1000
	DefaultTolerance  = 0.0
	DefaultPivotCheck = true
	DefaultFormat     = FormatTable
	DefaultPrecision  = 4
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = LogFormatText
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// EnvPrefix is the prefix for environment overrides. Nested keys use a double
// underscore: NUMLIN_SOLVER__ITERATIONS -> solver.iterations.
const EnvPrefix = "NUMLIN_"

// defaultMap is the confmap layer loaded first.
func defaultMap() map[string]interface{} {
	return map[string]interface{}{
		"solver.iterations":  DefaultIterations,
		"solver.tolerance":   DefaultTolerance,
		"solver.pivot_check": DefaultPivotCheck,
		"output.format":      DefaultFormat,
		"output.precision":   DefaultPrecision,
		"log.level":          DefaultLogLevel,
		"log.format":         DefaultLogFormat,
	}
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"iterations":  "solver.iterations",
	"tolerance":   "solver.tolerance",
	"pivot-check": "solver.pivot_check",
	"output":      "output.format",
	"precision":   "output.precision",
	"log-level":   "log.level",
	"log-format":  "log.format",
}
