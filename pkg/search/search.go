package search

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/nlitsme/expressionfinder/pkg/ops"
	"github.com/nlitsme/expressionfinder/pkg/tree"
)

// Match is one reported combination: its evaluated value and rendering.
type Match struct {
	Value float64 `json:"value"`
	Expr  string  `json:"expr"`
}

// Engine runs the exhaustive search.
type Engine struct {
	cfg      Config
	operands []float64
	binops   []*ops.Operation
}

// New validates the config and creates an engine. A digit/count override
// replaces the operand list; Reverse then reverses it. Malformed
// configuration is rejected here, before any enumeration starts.
func New(cfg Config) (*Engine, error) {
	operands := slices.Clone(cfg.Operands)
	if cfg.Count > 0 && cfg.Digit > 0 {
		operands = make([]float64, cfg.Count)
		for i := range operands {
			operands[i] = float64(cfg.Digit)
		}
	}
	if cfg.Reverse {
		slices.Reverse(operands)
	}
	if len(operands) == 0 {
		return nil, errors.New("no operands to combine")
	}
	if cfg.Tolerance < 0 {
		return nil, fmt.Errorf("negative tolerance: %v", cfg.Tolerance)
	}
	if len(cfg.Operators) == 0 {
		return nil, errors.New("no operators selected")
	}
	binops := make([]*ops.Operation, len(cfg.Operators))
	for i, name := range cfg.Operators {
		op, err := ops.Get(name)
		if err != nil {
			return nil, err
		}
		if op.Arity != 2 {
			return nil, fmt.Errorf("operation %s is not binary", name)
		}
		binops[i] = op
	}
	return &Engine{cfg: cfg, operands: operands, binops: binops}, nil
}

// Operands returns the effective operand sequence after overrides.
func (e *Engine) Operands() []float64 {
	return slices.Clone(e.operands)
}

// Matches lazily yields every combination whose evaluated result lies within
// Tolerance of Target, or every combination when Target is nil. The outer
// loop enumerates tree shapes, the inner loop operator indices in
// [0, radix^(leaves-1)); each iteration binds operands and operators onto a
// fresh clone of the shape, so nothing leaks across iterations. Breaking out
// of the range stops the search. A non-finite result never matches a finite
// target.
func (e *Engine) Matches() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		radix := len(e.binops)
		for shape := range tree.Shapes(len(e.operands)) {
			if e.cfg.Progress != nil {
				e.cfg.Progress(shape.String())
			}
			total := intPow(radix, tree.BinaryNodes(shape))
			for i := 0; i < total; i++ {
				t := shape.Clone()
				if err := tree.AssignValues(t, e.operands); err != nil {
					continue
				}
				tree.AssignOps(t, i, e.binops)
				v, err := t.Eval()
				if err != nil {
					continue
				}
				if e.cfg.Target == nil || math.Abs(v-*e.cfg.Target) <= e.cfg.Tolerance {
					if !yield(Match{Value: v, Expr: t.String()}) {
						return
					}
				}
			}
		}
	}
}

// Run drives Matches to completion, writing one "value=expr" line per match
// to w, and returns a summary with per-shape timing statistics.
func (e *Engine) Run(w io.Writer) Report {
	r := Report{
		Operands:  e.Operands(),
		Operators: slices.Clone(e.cfg.Operators),
		Target:    e.cfg.Target,
		Tolerance: e.cfg.Tolerance,
	}

	userProgress := e.cfg.Progress
	var perShape []float64
	var last time.Time
	start := time.Now()

	cfg := e.cfg
	cfg.Progress = func(shape string) {
		now := time.Now()
		if !last.IsZero() {
			perShape = append(perShape, now.Sub(last).Seconds())
		}
		last = now
		if userProgress != nil {
			userProgress(shape)
		}
	}
	timed := &Engine{cfg: cfg, operands: e.operands, binops: e.binops}

	for m := range timed.Matches() {
		fmt.Fprintf(w, "%v=%s\n", m.Value, m.Expr)
		r.Matches++
	}

	end := time.Now()
	if !last.IsZero() {
		perShape = append(perShape, end.Sub(last).Seconds())
	}
	r.Shapes = len(perShape)
	r.Combinations = r.Shapes * intPow(len(e.binops), len(e.operands)-1)
	r.Elapsed = end.Sub(start)
	if len(perShape) > 0 {
		r.MeanShapeSecs = stat.Mean(perShape, nil)
	}
	if len(perShape) > 1 {
		_, r.StdDevShapeSecs = stat.MeanStdDev(perShape, nil)
	}
	return r
}

// intPow computes a^b for non-negative b by binary exponentiation.
func intPow(a, b int) int {
	r := 1
	for b > 0 {
		if b&1 == 1 {
			r *= a
		}
		a *= a
		b >>= 1
	}
	return r
}
