package tree

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// Shapes lazily enumerates every distinct binary tree skeleton with the
// given number of leaves: for each split k in [1, leaves-1], every shape of
// size leaves-k on the left combined with every shape of size k on the
// right. A leaf count below one yields nothing. The sequence delivers one
// shape at a time; breaking out of the range stops the enumeration.
func Shapes(leaves int) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		enumShapes(leaves, yield)
	}
}

func enumShapes(leaves int, yield func(Node) bool) bool {
	if leaves < 1 {
		return true
	}
	if leaves == 1 {
		return yield(&Value{})
	}
	for k := 1; k < leaves; k++ {
		ok := enumShapes(leaves-k, func(left Node) bool {
			return enumShapes(k, func(right Node) bool {
				return yield(&Expr{Args: []Node{left, right}})
			})
		})
		if !ok {
			return false
		}
	}
	return true
}

// ShapeCount returns the number of shapes Shapes(leaves) produces: the
// (leaves-1)-th Catalan number.
func ShapeCount(leaves int) int {
	if leaves < 1 {
		return 0
	}
	n := leaves - 1
	return combin.Binomial(2*n, n) / (n + 1)
}
