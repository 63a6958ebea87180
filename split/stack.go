package split

import (
	"fmt"
	"math/bits"
)

// frame is one pending unit of work for SplitStack.
// A frame with merge set pops two results and combines them.
type frame struct {
	a, b  uint32
	merge bool
}

// SplitStack computes the same triple as Split using an explicit worklist
// instead of native recursion. The midpoint rule and the left-to-right merge
// order are identical, so results are equal integer for integer.
//
// Errors: ErrEmptyRange if a >= b.
//
// Complexity: same arithmetic as Split; O(log(b−a)) worklist entries.
func SplitStack(a, b uint32) (Triple, error) {
	if a >= b {
		return Triple{}, fmt.Errorf("%s(%d, %d): %w", MethodSplitStack, a, b, ErrEmptyRange)
	}

	depth := bits.Len32(b - a)
	work := make([]frame, 0, 2*depth+1)
	results := make([]Triple, 0, depth+1)

	work = append(work, frame{a: a, b: b})
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		if f.merge {
			n := len(results)
			merged := Combine(results[n-2], results[n-1])
			results = append(results[:n-2], merged)
			continue
		}
		if f.b-f.a == 1 {
			results = append(results, Leaf(f.a))
			continue
		}

		// LIFO: the left half is evaluated first, then the right half,
		// then the merge of the two.
		m := midpoint(f.a, f.b)
		work = append(work,
			frame{a: f.a, b: f.b, merge: true},
			frame{a: m, b: f.b},
			frame{a: f.a, b: m},
		)
	}

	return results[0], nil
}
