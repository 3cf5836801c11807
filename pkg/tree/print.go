package tree

import (
	"strconv"
	"strings"

	"github.com/nlitsme/expressionfinder/pkg/ops"
)

// precedence of a node as seen by its parent: the assigned operation's
// precedence, or atomic for values and unassigned internals (the latter
// render with their own brackets).
func precedence(n Node) int {
	if op := n.Operation(); op != nil {
		return op.Precedence
	}
	return ops.AtomicPrecedence
}

func (v *Value) String() string {
	return strconv.FormatFloat(v.X, 'g', -1, 64)
}

// String renders the expression with minimal brackets: a left operand is
// bracketed when its precedence is strictly lower than the parent's, a right
// operand also when equal, so that a-(b-c) keeps its brackets. Nested cat
// chains pick up brackets this way too; that rendering is known to be less
// natural than plain digit juxtaposition.
func (e *Expr) String() string {
	switch {
	case e.Op == nil:
		return e.placeholder()
	case len(e.Args) == 2 && e.Op.Infix != "":
		var b strings.Builder
		writeOperand(&b, e.Args[0], precedence(e.Args[0]) < e.Op.Precedence)
		b.WriteString(e.Op.Infix)
		writeOperand(&b, e.Args[1], precedence(e.Args[1]) <= e.Op.Precedence)
		return b.String()
	case len(e.Args) == 1 && e.Op.Infix != "":
		var b strings.Builder
		b.WriteString(e.Op.Infix)
		writeOperand(&b, e.Args[0], precedence(e.Args[0]) < e.Op.Precedence)
		return b.String()
	default:
		// no infix symbol, or three or more args: function call notation
		return e.call(e.Op.Name)
	}
}

// placeholder renders a skeleton node whose operation is not yet assigned,
// for progress display and debugging of partially built trees.
func (e *Expr) placeholder() string {
	switch len(e.Args) {
	case 2:
		return "(" + e.Args[0].String() + "#" + e.Args[1].String() + ")"
	case 1:
		return "(-" + e.Args[0].String() + ")"
	default:
		return e.call("op")
	}
}

func (e *Expr) call(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func writeOperand(b *strings.Builder, n Node, brackets bool) {
	if brackets {
		b.WriteByte('(')
	}
	b.WriteString(n.String())
	if brackets {
		b.WriteByte(')')
	}
}
