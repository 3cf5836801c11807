package tree

import (
	"errors"
	"fmt"

	"github.com/nlitsme/expressionfinder/pkg/ops"
)

var (
	// ErrOperandCount reports a mismatch between a tree's leaf count and
	// the operand sequence handed to AssignValues.
	ErrOperandCount = errors.New("operand count mismatch")

	// ErrUnassignedOperator reports evaluation of an internal node that
	// never received an operation.
	ErrUnassignedOperator = errors.New("unassigned operator")
)

// AssignValues writes one operand per leaf in pre-order, left to right,
// consuming vals exactly once. The tree's leaf count must equal len(vals).
func AssignValues(root Node, vals []float64) error {
	rest, err := setValues(root, vals)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d operands unused", ErrOperandCount, len(rest))
	}
	return nil
}

func setValues(n Node, vals []float64) ([]float64, error) {
	switch n := n.(type) {
	case *Value:
		if len(vals) == 0 {
			return nil, fmt.Errorf("%w: more leaves than operands", ErrOperandCount)
		}
		n.X = vals[0]
		return vals[1:], nil
	case *Expr:
		var err error
		for _, a := range n.Args {
			if vals, err = setValues(a, vals); err != nil {
				return nil, err
			}
		}
	}
	return vals, nil
}

// DecodeOpIndex interprets index as a mixed-radix number and returns its
// digits, least significant first. Distinct indices in [0, radix^digits)
// decode to distinct digit lists.
func DecodeOpIndex(index, radix, digits int) []int {
	out := make([]int, digits)
	for i := range out {
		out[i] = index % radix
		index /= radix
	}
	return out
}

// AssignOps picks one operation per binary internal node, visiting nodes in
// the same pre-order as AssignValues: digit i of index (radix len(binops))
// selects the operation of the i-th binary node. Internal nodes of other
// arity are left unassigned; the enumeration never builds them, but manually
// constructed trees may carry them.
func AssignOps(root Node, index int, binops []*ops.Operation) {
	digits := DecodeOpIndex(index, len(binops), BinaryNodes(root))
	setOps(root, digits, binops)
}

func setOps(n Node, digits []int, binops []*ops.Operation) []int {
	e, ok := n.(*Expr)
	if !ok {
		return digits
	}
	if len(e.Args) == 2 {
		e.Op = binops[digits[0]]
		digits = digits[1:]
	}
	for _, a := range e.Args {
		digits = setOps(a, digits, binops)
	}
	return digits
}
