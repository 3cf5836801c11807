package tree

import (
	"math"
	"testing"

	"github.com/nlitsme/expressionfinder/pkg/ops"
)

// operands [1,2,3] on the leaf-plus-(leaf,leaf) shape, operator index 0 over
// {add,sub,mul,div}: both nodes pick add.
func TestAssignedTreeScenario(t *testing.T) {
	shape := &Expr{Args: []Node{
		&Value{},
		&Expr{Args: []Node{&Value{}, &Value{}}},
	}}
	if err := AssignValues(shape, []float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	AssignOps(shape, 0, ops.Binary()[:4])

	if got := shape.String(); got != "1+(2+3)" {
		t.Errorf("String() = %q, want %q", got, "1+(2+3)")
	}
	v, err := shape.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Errorf("Eval() = %v, want 6", v)
	}

	// Same tree, same result on repeated calls.
	again, err := shape.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if again != v {
		t.Errorf("repeated Eval() = %v, want %v", again, v)
	}
}

func TestEvalDivisionByZeroPropagates(t *testing.T) {
	tr := bin(t, "add", leaf(1), bin(t, "div", leaf(1), leaf(0)))
	v, err := tr.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(v, 1) {
		t.Errorf("Eval() = %v, want +Inf", v)
	}
}

func TestEvalUnassigned(t *testing.T) {
	tr := &Expr{Args: []Node{leaf(1), leaf(2)}}
	if _, err := tr.Eval(); err == nil {
		t.Error("Eval of unassigned tree should fail")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := bin(t, "add", leaf(1), bin(t, "mul", leaf(2), leaf(3)))
	cl := orig.Clone()
	if cl.String() != orig.String() {
		t.Fatalf("clone mismatch: %q vs %q", cl.String(), orig.String())
	}
	cl.(*Expr).Args[1].(*Expr).Args[0].(*Value).X = 99
	if cl.String() == orig.String() {
		t.Error("clone is not a deep copy")
	}
}
