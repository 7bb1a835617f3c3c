package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-trees/internal/invariants"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree ordered by a Comparator. It never rebalances,
// so the depth D of the tree depends on the order of insertions: O(log n) for
// random orders, O(n) for sorted ones.
// Equal values are handled by the DuplicatePolicy given at construction.
// BSTree keeps no parent pointers. Mutations rebuild the links on the way back
// from the changed node, every recursive helper returns the subtree that
// replaces the one it was given.
// BSTree isn't safe for concurrent use; guard it with one lock if needed.
type BSTree[T any] struct {
	BinaryTree[T]
}

// New returns an empty BSTree. cfg.Comparator mustn't be nil.
func New[T any](cfg Config[T]) *BSTree[T] {
	if cfg.Comparator == nil {
		panic(errors.AssertionFailedf("Trees: nil Comparator"))
	}
	return &BSTree[T]{makeBinaryTree(cfg)}
}

// NewOrdered is New defaulting cfg.Comparator to Natural.
func NewOrdered[T constraints.Ordered](cfg Config[T]) *BSTree[T] {
	if cfg.Comparator == nil {
		cfg.Comparator = Natural[T]
	}
	return New(cfg)
}

// String implements fmt.Stringer and containers.Container.
func (u *BSTree[T]) String() string {
	return "BSTree\n" + u.Pretty(PrettySideways)
}

// order returns where v goes relative to a node holding w: negative for the
// left subtree, positive for the right subtree, 0 if v stops at that node.
func (u *BSTree[T]) order(v, w T) int {
	c := u.cmp(v, w)
	if c == 0 {
		switch u.dup {
		case InsertLeft:
			return -1
		case InsertRight:
			return 1
		}
	}
	return c
}

// Insert [Tree.Insert]. Under Reject, inserting a value equal to an existing
// one returns the existing node and false; the size is unchanged.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) (*Node[T], bool) {
	link := &u.root
	for cur := *link; cur != nil; cur = *link {
		if c := u.order(v, cur.v); c < 0 {
			link = &cur.l
		} else if c > 0 {
			link = &cur.r
		} else {
			return cur, false
		}
	}
	n := &Node[T]{v: v}
	*link = n
	u.size++
	invariants.MaybeCheck(u.CheckInvariants)
	return n, true
}

// InsertMany inserts vs in order and returns how many of them were linked.
func (u *BSTree[T]) InsertMany(vs ...T) int {
	k := 0
	for _, v := range vs {
		if _, ok := u.Insert(v); ok {
			k++
		}
	}
	return k
}

// FindFrom searches the subtree rooted at root for a node equal to v, returning
// the one closest to root.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindFrom(root *Node[T], v T) (*Node[T], bool) {
	for cur := root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur, true
		}
	}
	return nil, false
}

// Find [FindFrom] in the whole tree.
func (u *BSTree[T]) Find(v T) (*Node[T], bool) {
	return u.FindFrom(u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// FindMinFrom returns the leftmost node of the subtree rooted at root.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindMinFrom(root *Node[T]) (*Node[T], bool) {
	if root == nil {
		return nil, false
	}
	for root.l != nil {
		root = root.l
	}
	return root, true
}

// FindMaxFrom returns the rightmost node of the subtree rooted at root.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindMaxFrom(root *Node[T]) (*Node[T], bool) {
	if root == nil {
		return nil, false
	}
	for root.r != nil {
		root = root.r
	}
	return root, true
}

// FindMin [FindMinFrom] in the whole tree.
func (u *BSTree[T]) FindMin() (*Node[T], bool) {
	return u.FindMinFrom(u.root)
}

// FindMax [FindMaxFrom] in the whole tree.
func (u *BSTree[T]) FindMax() (*Node[T], bool) {
	return u.FindMaxFrom(u.root)
}

// Minimum [Tree.Minimum]
func (u *BSTree[T]) Minimum() (v T, ok bool) {
	if n, ok := u.FindMin(); ok {
		return n.v, true
	}
	return
}

// Maximum [Tree.Maximum]
func (u *BSTree[T]) Maximum() (v T, ok bool) {
	if n, ok := u.FindMax(); ok {
		return n.v, true
	}
	return
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// FindParentFrom returns the node whose child is n, searching the subtree
// rooted at root along the path Insert would take for n's value. A node equal
// to n but not n itself sends the search to the side the DuplicatePolicy puts
// equal values on; under Reject the search stops there. root itself, and any
// node not under root, have no parent.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) FindParentFrom(root, n *Node[T]) (*Node[T], bool) {
	if n == nil || root == n {
		return nil, false
	}
	for cur := root; cur != nil; {
		if cur.l == n || cur.r == n {
			return cur, true
		}
		if c := u.order(n.v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return nil, false
}

// FindParent [FindParentFrom] in the whole tree.
func (u *BSTree[T]) FindParent(n *Node[T]) (*Node[T], bool) {
	return u.FindParentFrom(u.root, n)
}

// FindPathFrom returns the values on the path from root down to the first node
// equal to v, both ends included.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) FindPathFrom(root *Node[T], v T) ([]T, bool) {
	var path []T
	for cur := root; cur != nil; {
		path = append(path, cur.v)
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return path, true
		}
	}
	return nil, false
}

// FindPath [FindPathFrom] in the whole tree.
func (u *BSTree[T]) FindPath(v T) ([]T, bool) {
	return u.FindPathFrom(u.root, v)
}

// FindPathGivenFrom is FindPathFrom ending at the node n itself rather than at
// the first node equal to its value. Equal nodes other than n are passed the
// same way FindParentFrom passes them.
// Time: O(D); Space: O(D)
func (u *BSTree[T]) FindPathGivenFrom(root, n *Node[T]) ([]T, bool) {
	if n == nil {
		return nil, false
	}
	var path []T
	for cur := root; cur != nil; {
		path = append(path, cur.v)
		if cur == n {
			return path, true
		}
		if c := u.order(n.v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return nil, false
}

// FindPathGiven [FindPathGivenFrom] in the whole tree.
func (u *BSTree[T]) FindPathGiven(n *Node[T]) ([]T, bool) {
	return u.FindPathGivenFrom(u.root, n)
}

// remove the first node equal to v from the subtree rooted at cur. Returns the
// subtree that replaces cur and whether a node was removed. Recursive.
func (u *BSTree[T]) remove(cur *Node[T], v T) (*Node[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if c := u.cmp(v, cur.v); c < 0 {
		cur.l, removed = u.remove(cur.l, v)
	} else if c > 0 {
		cur.r, removed = u.remove(cur.r, v)
	} else {
		u.size--
		return u.unlink(cur), true
	}
	return cur, removed
}

// unlink n from its subtree and return the replacement of that subtree:
// nothing for a leaf, the only child for a node with 1 child. A node with 2
// children stays in place and takes the value of its in-order predecessor, or
// of its successor under InsertRight so that equal values stay on the right;
// the node that held that value is spliced out instead.
func (u *BSTree[T]) unlink(n *Node[T]) *Node[T] {
	var m *Node[T]
	switch {
	case n.l == nil:
		r := n.r
		n.r = nil
		return r
	case n.r == nil:
		l := n.l
		n.l = nil
		return l
	case u.dup == InsertRight:
		n.r, m = removeMin(n.r)
	default:
		n.l, m = removeMax(n.l)
	}
	n.v = m.v
	return n
}

// removeMax splices the rightmost node out of the subtree rooted at n, which
// mustn't be nil. Returns the new subtree and the detached node. Recursive.
func removeMax[T any](n *Node[T]) (*Node[T], *Node[T]) {
	if n.r == nil {
		l := n.l
		n.l = nil
		return l, n
	}
	var m *Node[T]
	n.r, m = removeMax(n.r)
	return n, m
}

// removeMin is the mirror of removeMax. Recursive.
func removeMin[T any](n *Node[T]) (*Node[T], *Node[T]) {
	if n.l == nil {
		r := n.r
		n.r = nil
		return r, n
	}
	var m *Node[T]
	n.l, m = removeMin(n.l)
	return n, m
}

// Remove [Tree.Remove]. Removes the node equal to v closest to the root.
// Removing a value that isn't in the tree changes nothing. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	var ok bool
	u.root, ok = u.remove(u.root, v)
	invariants.MaybeCheck(u.CheckInvariants)
	return ok
}

// link returns the pointer holding n: the root pointer of the tree or a child
// pointer of n's parent. nil when n isn't in the tree.
func (u *BSTree[T]) link(n *Node[T]) **Node[T] {
	if n == nil {
		return nil
	}
	if n == u.root {
		return &u.root
	}
	p, ok := u.FindParent(n)
	if !ok {
		return nil
	}
	if p.l == n {
		return &p.l
	}
	return &p.r
}

// RemoveFrom removes the node equal to v closest to root, searching only the
// subtree rooted at root, which must be a node of u. The new subtree is linked
// back in place of root and returned. If root isn't in u nothing happens and
// root is returned with false. Recursive.
// Time: O(D)
func (u *BSTree[T]) RemoveFrom(root *Node[T], v T) (*Node[T], bool) {
	l := u.link(root)
	if l == nil {
		return root, false
	}
	var ok bool
	*l, ok = u.remove(root, v)
	invariants.MaybeCheck(u.CheckInvariants)
	return *l, ok
}

// RemoveGiven removes the node n itself, found through FindParent, even when
// other nodes hold equal values. If n has 2 children it stays in the tree
// holding its neighbour's value, and the neighbour's node is detached instead.
// Returns false if n isn't in the tree.
// Time: O(D)
func (u *BSTree[T]) RemoveGiven(n *Node[T]) bool {
	l := u.link(n)
	if l == nil {
		return false
	}
	*l = u.unlink(n)
	u.size--
	invariants.MaybeCheck(u.CheckInvariants)
	return true
}
