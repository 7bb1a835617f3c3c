package Trees

import "github.com/cockroachdb/errors"

// bound is one end of the range a subtree's values must fall in.
type bound[T any] struct {
	n         *Node[T]
	inclusive bool
}

// CheckInvariants [Tree.CheckInvariants]. It verifies that no node is reachable
// twice, that Size() matches the reachable nodes, and that every node lies in
// the range its ancestors allow under the DuplicatePolicy.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) CheckInvariants() error {
	seen := make(map[*Node[T]]struct{}, u.size)
	if err := u.check(u.root, bound[T]{}, bound[T]{}, seen); err != nil {
		return err
	}
	if len(seen) != u.size {
		return errors.AssertionFailedf("Trees: size is %d, but %d nodes are reachable", u.size, len(seen))
	}
	return nil
}

func (u *BSTree[T]) check(n *Node[T], lo, hi bound[T], seen map[*Node[T]]struct{}) error {
	if n == nil {
		return nil
	}
	if _, ok := seen[n]; ok {
		return errors.AssertionFailedf("Trees: node %s is reachable twice", errors.Safe(u.format(n.v)))
	}
	seen[n] = struct{}{}
	if lo.n != nil {
		if c := u.cmp(n.v, lo.n.v); c < 0 || (c == 0 && !lo.inclusive) {
			return errors.AssertionFailedf("Trees: node %s in the right subtree of %s",
				errors.Safe(u.format(n.v)), errors.Safe(u.format(lo.n.v)))
		}
	}
	if hi.n != nil {
		if c := u.cmp(n.v, hi.n.v); c > 0 || (c == 0 && !hi.inclusive) {
			return errors.AssertionFailedf("Trees: node %s in the left subtree of %s",
				errors.Safe(u.format(n.v)), errors.Safe(u.format(hi.n.v)))
		}
	}
	if err := u.check(n.l, lo, bound[T]{n, u.dup == InsertLeft}, seen); err != nil {
		return err
	}
	return u.check(n.r, bound[T]{n, u.dup == InsertRight}, hi, seen)
}
