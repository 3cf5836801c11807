package ops

import (
	"fmt"
	"math"
)

// AtomicPrecedence is the precedence assigned to plain values: higher than
// any operator, so leaves are never parenthesized.
const AtomicPrecedence = 9

// TenFactorIterations bounds the digit scan in tenFactor. 20 doublings cover
// every finite float64 that still concatenates meaningfully.
var TenFactorIterations = 20

// Operation describes one entry of the static catalog: a name, an optional
// infix symbol, its arity and precedence, and a pure evaluation function.
// Eval is total over the reals except for the usual float64 partiality
// (division by zero yields ±Inf, which callers propagate rather than trap).
type Operation struct {
	Name       string
	Infix      string
	Arity      int
	Precedence int
	Eval       func(args []float64) float64
}

// catalog order is significant: Binary() preserves it, and the operator
// assigner interprets mixed-radix digits against that order.
var catalog = []*Operation{
	{Name: "add", Infix: "+", Arity: 2, Precedence: 1, Eval: func(a []float64) float64 { return a[0] + a[1] }},
	{Name: "sub", Infix: "-", Arity: 2, Precedence: 1, Eval: func(a []float64) float64 { return a[0] - a[1] }},
	{Name: "mul", Infix: "*", Arity: 2, Precedence: 2, Eval: func(a []float64) float64 { return a[0] * a[1] }},
	{Name: "div", Infix: "/", Arity: 2, Precedence: 3, Eval: func(a []float64) float64 { return a[0] / a[1] }},
	{Name: "pow", Infix: "^", Arity: 2, Precedence: 4, Eval: func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	{Name: "cat", Infix: "||", Arity: 2, Precedence: 5, Eval: func(a []float64) float64 { return a[0]*tenFactor(a[1]) + a[1] }},
	{Name: "neg", Infix: "-", Arity: 1, Precedence: 2, Eval: func(a []float64) float64 { return -a[0] }},
}

// All returns the full catalog in registration order.
func All() []*Operation {
	return catalog
}

// Binary returns the catalog filtered to arity-2 operations, in registration
// order. The order defines the radix digit meaning for operator assignment.
func Binary() []*Operation {
	var bin []*Operation
	for _, op := range catalog {
		if op.Arity == 2 {
			bin = append(bin, op)
		}
	}
	return bin
}

// BinaryNames returns the names of all binary operations in catalog order.
func BinaryNames() []string {
	bin := Binary()
	names := make([]string, len(bin))
	for i, op := range bin {
		names[i] = op.Name
	}
	return names
}

// Get returns the operation with the given name.
func Get(name string) (*Operation, error) {
	for _, op := range catalog {
		if op.Name == name {
			return op, nil
		}
	}
	return nil, fmt.Errorf("unknown operation: %s", name)
}

// tenFactor returns the smallest power of ten strictly greater than x, so
// that cat(a, b) = a*tenFactor(b)+b concatenates the decimal digits of two
// non-negative integers.
func tenFactor(x float64) float64 {
	f := 1.0
	for i := 0; i < TenFactorIterations && x >= f; i++ {
		f *= 10
	}
	return f
}
