package tree

import "github.com/nlitsme/expressionfinder/pkg/ops"

// Node is the interface for expression tree nodes. A tree starts life as a
// bare skeleton (values unset, operations unassigned) and is filled in by
// AssignValues and AssignOps before evaluation.
type Node interface {
	Operation() *ops.Operation // nil for values and unassigned internals
	Eval() (float64, error)
	String() string
	Clone() Node
	Leaves() int
}

// Value is a leaf holding one operand.
type Value struct {
	X float64
}

// Expr is an internal node with an ordered list of children and, once
// assigned, an operation from the catalog.
type Expr struct {
	Op   *ops.Operation
	Args []Node
}

func (v *Value) Operation() *ops.Operation { return nil }
func (e *Expr) Operation() *ops.Operation  { return e.Op }

func (v *Value) Leaves() int { return 1 }
func (e *Expr) Leaves() int {
	n := 0
	for _, a := range e.Args {
		n += a.Leaves()
	}
	return n
}

// BinaryNodes counts the internal nodes with exactly two children. It is the
// digit count of an operator index for this tree.
func BinaryNodes(n Node) int {
	e, ok := n.(*Expr)
	if !ok {
		return 0
	}
	count := 0
	if len(e.Args) == 2 {
		count = 1
	}
	for _, a := range e.Args {
		count += BinaryNodes(a)
	}
	return count
}
