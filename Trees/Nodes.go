package Trees

import "encoding/json"

// A Node in a binary tree. Each node is owned by exactly one parent, or by the
// tree when it is the root.
// The zero value is a leaf holding the zero value of T.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a node holding v with the given children. l and r must not
// be reachable from anywhere else.
func NewNode[T any](v T, l, r *Node[T]) *Node[T] {
	return &Node[T]{v, l, r}
}

// Data held by n.
func (n *Node[T]) Data() T {
	return n.v
}

// Left child of n, nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

func (n *Node[T]) isLeaf() bool {
	return n.l == nil && n.r == nil
}

type jsonNode[T any] struct {
	Data  T        `json:"data"`
	Left  *Node[T] `json:"left"`
	Right *Node[T] `json:"right"`
}

// MarshalJSON renders the subtree rooted at n as nested objects. Missing
// children are null. The output is for debugging only.
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(jsonNode[T]{n.v, n.l, n.r})
}
