package search

import (
	"github.com/nlitsme/expressionfinder/pkg/ops"
)

// DefaultTolerance is the window around the target inside which a result
// counts as a match. A design choice, not a derived constant.
const DefaultTolerance = 0.11

// ProgressFunc is invoked once per tree shape, before that shape's operator
// combinations run, with the skeleton's rendering. The engine does not
// measure or format time; callers that want lap times keep their own clock.
type ProgressFunc func(shape string)

// Config holds all parameters for a search run.
type Config struct {
	Operands  []float64 `yaml:"operands"`
	Reverse   bool      `yaml:"reverse"`
	Digit     int       `yaml:"digit"`
	Count     int       `yaml:"count"`
	Operators []string  `yaml:"operators"`
	Target    *float64  `yaml:"target"`
	Tolerance float64   `yaml:"tolerance"`

	Progress ProgressFunc `yaml:"-"`
}

// DefaultConfig returns a config with the classic setup: operands 1..9
// ascending, every binary operation in the catalog, no target.
func DefaultConfig() Config {
	return Config{
		Operands:  []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		Operators: ops.BinaryNames(),
		Tolerance: DefaultTolerance,
	}
}
