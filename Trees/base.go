package Trees

import (
	"fmt"
)

// BinaryTree is the part of a tree independent of any ordering: it owns the
// root, keeps count of the nodes, and knows how to walk, measure and classify
// the shape under the root. The ordering operations live in BSTree, which
// embeds it.
// Shape predicates are also available as package functions taking any subtree
// root; the methods apply them to the whole tree.
type BinaryTree[T any] struct {
	root   *Node[T]
	size   int
	cmp    Comparator[T]
	dup    DuplicatePolicy
	format func(T) string
}

func makeBinaryTree[T any](cfg Config[T]) BinaryTree[T] {
	f := cfg.Formatter
	if f == nil {
		f = func(v T) string { return fmt.Sprint(v) }
	}
	return BinaryTree[T]{cmp: cfg.Comparator, dup: cfg.Duplicates, format: f}
}

// Root of the tree, nil when the tree is empty.
func (u *BinaryTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of nodes in the tree.
// Time: O(1); Space: O(1)
func (u *BinaryTree[T]) Size() int {
	return u.size
}

// Empty reports whether the tree has no nodes.
func (u *BinaryTree[T]) Empty() bool {
	return u.root == nil
}

// Clear detaches every node. The nodes become garbage once the caller drops
// its own references to them.
func (u *BinaryTree[T]) Clear() {
	u.root, u.size = nil, 0
}

// DuplicatePolicy the tree was configured with.
func (u *BinaryTree[T]) DuplicatePolicy() DuplicatePolicy {
	return u.dup
}

// InOrder visits the subtree rooted at n left, root, right. Recursive.
func InOrder[T any](n *Node[T], visit func(*Node[T])) {
	if n != nil {
		InOrder(n.l, visit)
		visit(n)
		InOrder(n.r, visit)
	}
}

// PreOrder visits the subtree rooted at n root, left, right. Recursive.
func PreOrder[T any](n *Node[T], visit func(*Node[T])) {
	if n != nil {
		visit(n)
		PreOrder(n.l, visit)
		PreOrder(n.r, visit)
	}
}

// PostOrder visits the subtree rooted at n left, right, root. Recursive.
func PostOrder[T any](n *Node[T], visit func(*Node[T])) {
	if n != nil {
		PostOrder(n.l, visit)
		PostOrder(n.r, visit)
		visit(n)
	}
}

// TraverseInOrder [InOrder] over the whole tree.
func (u *BinaryTree[T]) TraverseInOrder(visit func(*Node[T])) {
	InOrder(u.root, visit)
}

// TraversePreOrder [PreOrder] over the whole tree.
func (u *BinaryTree[T]) TraversePreOrder(visit func(*Node[T])) {
	PreOrder(u.root, visit)
}

// TraversePostOrder [PostOrder] over the whole tree.
func (u *BinaryTree[T]) TraversePostOrder(visit func(*Node[T])) {
	PostOrder(u.root, visit)
}

// ToArray returns the values in in-order. len(result)==Size().
// Time: O(n); Space: O(n)
func (u *BinaryTree[T]) ToArray() []T {
	vs := make([]T, 0, u.size)
	u.TraverseInOrder(func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// Values is ToArray boxed for github.com/emirpasic/gods containers.
func (u *BinaryTree[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	u.TraverseInOrder(func(n *Node[T]) {
		vs = append(vs, n.v)
	})
	return vs
}

// Height of the subtree rooted at n, 0 if n is nil. Recursive.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(Height(n.l), Height(n.r)) + 1
}

// Height [Height] of the whole tree.
func (u *BinaryTree[T]) Height() int {
	return Height(u.root)
}

// Count the nodes of the subtree rooted at n. Recursive.
func Count[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return Count(n.l) + Count(n.r) + 1
}

// IsFull reports whether every node has either 0 or 2 children. An empty
// subtree isn't full. Recursive.
func IsFull[T any](n *Node[T]) bool {
	if n == nil {
		return false
	}
	if n.isLeaf() {
		return true
	}
	if n.l != nil && n.r != nil {
		return IsFull(n.l) && IsFull(n.r)
	}
	return false
}

// IsFull [IsFull] of the whole tree.
func (u *BinaryTree[T]) IsFull() bool {
	return IsFull(u.root)
}

// IsPerfect reports whether every inner node has 2 children and every leaf
// sits at the bottom level. An empty subtree isn't perfect. Recursive.
// Time: O(n), one extra pass computes the height.
func IsPerfect[T any](n *Node[T]) bool {
	return isPerfect(n, Height(n), 0)
}

func isPerfect[T any](n *Node[T], h, d int) bool {
	if n == nil {
		return false
	}
	if n.isLeaf() {
		return h == d+1
	}
	if n.l == nil || n.r == nil {
		return false
	}
	return isPerfect(n.l, h, d+1) && isPerfect(n.r, h, d+1)
}

// IsPerfect [IsPerfect] of the whole tree.
func (u *BinaryTree[T]) IsPerfect() bool {
	return IsPerfect(u.root)
}

// IsComplete reports whether the nodes, numbered as in an implicit array heap
// (children of i at 2i+1 and 2i+2, root at 0), all get an index below the
// number of nodes. An empty subtree is complete. Recursive.
// Time: O(n), one extra pass counts the nodes.
func IsComplete[T any](n *Node[T]) bool {
	return isComplete(n, 0, Count(n))
}

func isComplete[T any](n *Node[T], i, sz int) bool {
	if n == nil {
		return true
	}
	if i >= sz {
		return false
	}
	return isComplete(n.l, 2*i+1, sz) && isComplete(n.r, 2*i+2, sz)
}

// IsComplete [IsComplete] of the whole tree, using Size() as the node count.
func (u *BinaryTree[T]) IsComplete() bool {
	return isComplete(u.root, 0, u.size)
}

// IsDegenerate reports whether no node has 2 children, i.e. the subtree is a
// single chain. An empty subtree is degenerate. Recursive.
func IsDegenerate[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.l != nil && n.r != nil {
		return false
	}
	return IsDegenerate(n.l) && IsDegenerate(n.r)
}

// IsDegenerate [IsDegenerate] of the whole tree.
func (u *BinaryTree[T]) IsDegenerate() bool {
	return IsDegenerate(u.root)
}

// IsBalanced is a local shape test, not a height balance: it fails when some
// node has a grandchild on one side and no child at all on the other side.
// The chain 1-2-3 is unbalanced, but a tree with one long path and a single
// leaf on the other side of every node passes. Use IsHeightBalanced for the
// AVL condition. An empty subtree is balanced. Recursive.
func IsBalanced[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.l != nil && !n.l.isLeaf() && n.r == nil {
		return false
	}
	if n.r != nil && !n.r.isLeaf() && n.l == nil {
		return false
	}
	return IsBalanced(n.l) && IsBalanced(n.r)
}

// IsBalanced [IsBalanced] of the whole tree.
func (u *BinaryTree[T]) IsBalanced() bool {
	return IsBalanced(u.root)
}

// IsHeightBalanced reports whether the heights of the 2 subtrees of every node
// differ by at most 1. An empty subtree is height balanced. Recursive.
// Time: O(n)
func IsHeightBalanced[T any](n *Node[T]) bool {
	_, ok := balancedHeight(n)
	return ok
}

func balancedHeight[T any](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := balancedHeight(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(n.r)
	if !ok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// IsHeightBalanced [IsHeightBalanced] of the whole tree.
func (u *BinaryTree[T]) IsHeightBalanced() bool {
	return IsHeightBalanced(u.root)
}

// IsSkewedLeft reports whether every node having a right child also has a left
// child. An empty subtree is left skewed. Recursive.
func IsSkewedLeft[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.l == nil && n.r != nil {
		return false
	}
	return IsSkewedLeft(n.l) && IsSkewedLeft(n.r)
}

// IsSkewedLeft [IsSkewedLeft] of the whole tree.
func (u *BinaryTree[T]) IsSkewedLeft() bool {
	return IsSkewedLeft(u.root)
}

// IsSkewedRight is the mirror of IsSkewedLeft. Recursive.
func IsSkewedRight[T any](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if n.l != nil && n.r == nil {
		return false
	}
	return IsSkewedRight(n.l) && IsSkewedRight(n.r)
}

// IsSkewedRight [IsSkewedRight] of the whole tree.
func (u *BinaryTree[T]) IsSkewedRight() bool {
	return IsSkewedRight(u.root)
}

// InOrder [Tree.InOrder] using an explicit stack, the tree isn't touched.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BinaryTree[T]) InOrder() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}
