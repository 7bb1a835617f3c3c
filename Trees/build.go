package Trees

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// UnsortedError is returned by Build when the given slice isn't strictly
// ascending under the comparator.
type UnsortedError[T any] struct {
	// Index of the first value not greater than the one before it.
	Index      int
	Prev, Next T
}

func (e *UnsortedError[T]) Error() string {
	return fmt.Sprintf("Trees: values at %d and %d aren't strictly ascending: %v, %v", e.Index-1, e.Index, e.Prev, e.Next)
}

// Build returns a BSTree holding sorted, built directly in O(n) rather than by
// repeated Insert. The result has minimal height: every subtree takes the
// middle value of its range as its root.
// sorted must be strictly ascending under cfg.Comparator, otherwise an
// *UnsortedError is returned. cfg.Comparator mustn't be nil.
// Time: O(n)
func Build[T any](sorted []T, cfg Config[T]) (*BSTree[T], error) {
	u := New(cfg)
	for i := 1; i < len(sorted); i++ {
		if u.cmp(sorted[i-1], sorted[i]) >= 0 {
			return nil, errors.WithStack(&UnsortedError[T]{i, sorted[i-1], sorted[i]})
		}
	}
	u.root, u.size = build(sorted), len(sorted)
	return u, nil
}

// BuildOrdered is Build defaulting cfg.Comparator to Natural.
func BuildOrdered[T constraints.Ordered](sorted []T, cfg Config[T]) (*BSTree[T], error) {
	if cfg.Comparator == nil {
		cfg.Comparator = Natural[T]
	}
	return Build(sorted, cfg)
}

func build[T any](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}
