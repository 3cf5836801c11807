package ops

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinaryOrderIsStable(t *testing.T) {
	want := []string{"add", "sub", "mul", "div", "pow", "cat"}
	if diff := cmp.Diff(want, BinaryNames()); diff != "" {
		t.Errorf("BinaryNames() mismatch (-want +got):\n%s", diff)
	}
	// Repeated calls must return the same order; it defines the radix
	// digit meaning for operator assignment.
	if diff := cmp.Diff(BinaryNames(), BinaryNames()); diff != "" {
		t.Errorf("BinaryNames() unstable (-first +second):\n%s", diff)
	}
	for _, op := range Binary() {
		if op.Arity != 2 {
			t.Errorf("Binary() returned %s with arity %d", op.Name, op.Arity)
		}
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		op   string
		args []float64
		want float64
	}{
		{"add", []float64{2, 3}, 5},
		{"sub", []float64{2, 3}, -1},
		{"mul", []float64{2, 3}, 6},
		{"div", []float64{3, 2}, 1.5},
		{"pow", []float64{2, 10}, 1024},
		{"cat", []float64{1, 2}, 12},
		{"cat", []float64{12, 3}, 123},
		{"cat", []float64{9, 99}, 999},
		{"cat", []float64{0, 5}, 5},
		{"neg", []float64{7}, -7},
	}
	for _, tc := range tests {
		op, err := Get(tc.op)
		if err != nil {
			t.Fatal(err)
		}
		if got := op.Eval(tc.args); got != tc.want {
			t.Errorf("%s(%v) = %v, want %v", tc.op, tc.args, got, tc.want)
		}
	}
}

func TestDivisionByZeroPropagates(t *testing.T) {
	div, err := Get("div")
	if err != nil {
		t.Fatal(err)
	}
	if got := div.Eval([]float64{1, 0}); !math.IsInf(got, 1) {
		t.Errorf("div(1, 0) = %v, want +Inf", got)
	}
	if got := div.Eval([]float64{0, 0}); !math.IsNaN(got) {
		t.Errorf("div(0, 0) = %v, want NaN", got)
	}
}

// The digit scan in cat is capped: for operands far beyond 10^20 the factor
// saturates at 10^20 instead of scanning forever.
func TestCatDigitScanCap(t *testing.T) {
	cat, err := Get("cat")
	if err != nil {
		t.Fatal(err)
	}
	// Sum the saturated factor and the operand at runtime: a constant
	// 1e20+1e25 is rounded once at compile time and lands one ULP away
	// from the IEEE addition Eval performs.
	factor, operand := 1e20, 1e25
	want := factor + operand
	if got := cat.Eval([]float64{1, operand}); got != want {
		t.Errorf("cat(1, 1e25) = %v, want %v", got, want)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("bogus"); err == nil {
		t.Error("Get(bogus) should fail")
	}
}

func TestNegRegisteredButNotBinary(t *testing.T) {
	neg, err := Get("neg")
	if err != nil {
		t.Fatal(err)
	}
	if neg.Arity != 1 {
		t.Errorf("neg arity = %d, want 1", neg.Arity)
	}
	for _, op := range Binary() {
		if op.Name == "neg" {
			t.Error("Binary() must not include the unary neg stub")
		}
	}
}
