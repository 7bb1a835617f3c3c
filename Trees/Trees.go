package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning the node holding v and whether a new node was linked.
	//Exact behavior on equal values depend on the DuplicatePolicy.
	Insert(v T) (*Node[T], bool)
	//Remove v from the Tree. Returning true if a node was removed.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//CheckInvariants returns an error describing the first structural or
	//ordering violation found, nil if the tree is sound.
	CheckInvariants() error
}

// Comparator is a three-way order over T. The result is negative when a
// orders before b, zero when they are equal, and positive when a orders after b.
// A tree trusts its comparator to be a total order; it is never validated.
type Comparator[T any] func(a, b T) int

// Natural is the Comparator of the built-in ordering of T.
func Natural[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Reverse returns a Comparator ordering values opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// GodsComparator adapts a github.com/emirpasic/gods comparator, such as
// utils.IntComparator, to a Comparator over T.
func GodsComparator[T any](c utils.Comparator) Comparator[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// DuplicatePolicy decides what Insert does with a value comparing equal to
// one already in the tree.
type DuplicatePolicy uint8

const (
	// Reject leaves the tree unchanged and reports the existing node.
	Reject DuplicatePolicy = iota
	// InsertLeft links the new value into the left subtree of its equal.
	// Left subtrees then hold values less than or equal to their root.
	InsertLeft
	// InsertRight links the new value into the right subtree of its equal.
	// Right subtrees then hold values greater than or equal to their root.
	InsertRight
)

func (p DuplicatePolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case InsertLeft:
		return "insert-left"
	case InsertRight:
		return "insert-right"
	default:
		return "unknown"
	}
}

// Config holds everything a tree is constructed with. It is read once; a tree
// can't be reconfigured afterwards.
type Config[T any] struct {
	// Comparator orders the values. Required by New, defaults to Natural in NewOrdered.
	Comparator Comparator[T]
	// Duplicates is the policy for equal values. The zero value is Reject.
	Duplicates DuplicatePolicy
	// Formatter renders a value in Pretty output. Defaults to fmt.Sprint.
	Formatter func(T) string
}
