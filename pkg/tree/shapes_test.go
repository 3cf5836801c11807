package tree

import (
	"testing"
)

func TestShapesCatalanCounts(t *testing.T) {
	// Catalan numbers: shapes(n) = C(n-1)
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 5, 5: 14, 6: 42, 7: 132, 8: 429}
	for n, wantCount := range want {
		got := 0
		for range Shapes(n) {
			got++
		}
		if got != wantCount {
			t.Errorf("Shapes(%d) produced %d shapes, want %d", n, got, wantCount)
		}
		if sc := ShapeCount(n); sc != wantCount {
			t.Errorf("ShapeCount(%d) = %d, want %d", n, sc, wantCount)
		}
	}
}

func TestShapesAreDistinct(t *testing.T) {
	for n := 1; n <= 7; n++ {
		seen := map[string]bool{}
		for shape := range Shapes(n) {
			// Skeleton rendering uses the '#' placeholder, so the string
			// captures exactly the bracket structure.
			s := shape.String()
			if seen[s] {
				t.Errorf("Shapes(%d) produced duplicate shape %s", n, s)
			}
			seen[s] = true
			if l := shape.Leaves(); l != n {
				t.Errorf("shape %s has %d leaves, want %d", s, l, n)
			}
			if m := BinaryNodes(shape); m != n-1 {
				t.Errorf("shape %s has %d binary nodes, want %d", s, m, n-1)
			}
		}
	}
}

func TestShapesInvalidLeafCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		for range Shapes(n) {
			t.Fatalf("Shapes(%d) yielded a shape", n)
		}
	}
}

func TestShapesStopOnBreak(t *testing.T) {
	got := 0
	for range Shapes(10) {
		got++
		if got == 3 {
			break
		}
	}
	if got != 3 {
		t.Errorf("pulled %d shapes, want 3", got)
	}
}
