package Trees

import (
	"encoding/json"
	"strings"

	"github.com/kr/pretty"
)

// PrettyStyle selects one of the Pretty renderers.
type PrettyStyle uint8

const (
	// PrettySideways draws the tree rotated a quarter turn counterclockwise:
	// right subtrees above their parent, left subtrees below, one node per line.
	//
	//	│   ┌── 7
	//	└── 5
	//	    └── 2
	PrettySideways PrettyStyle = iota
	// PrettyPreOrder draws the tree as a directory listing in pre-order, the
	// root on the first line and each child under its parent, left first.
	//
	//	5
	//	├── 2
	//	└── 7
	PrettyPreOrder
)

const (
	ptrMid  = "├── "
	ptrLast = "└── "
	ptrUp   = "┌── "
	barPad  = "│   "
	spcPad  = "    "
)

// Pretty renders the tree as box-drawing text. The empty tree renders as the
// empty string. The output is meant for people and has no stable format.
func (u *BinaryTree[T]) Pretty(style PrettyStyle) string {
	if u.root == nil {
		return ""
	}
	var sb strings.Builder
	switch style {
	case PrettyPreOrder:
		sb.WriteString(u.format(u.root.v))
		ptrL := ptrLast
		if u.root.r != nil {
			ptrL = ptrMid
		}
		u.prettyPreOrder(&sb, "", ptrL, u.root.l, u.root.r != nil)
		u.prettyPreOrder(&sb, "", ptrLast, u.root.r, false)
	default:
		u.prettySideways(&sb, "", true, u.root)
	}
	return sb.String()
}

func (u *BinaryTree[T]) prettySideways(sb *strings.Builder, prefix string, tail bool, n *Node[T]) {
	if n.r != nil {
		if tail {
			u.prettySideways(sb, prefix+barPad, false, n.r)
		} else {
			u.prettySideways(sb, prefix+spcPad, false, n.r)
		}
	}
	sb.WriteString(prefix)
	if tail {
		sb.WriteString(ptrLast)
	} else {
		sb.WriteString(ptrUp)
	}
	sb.WriteString(u.format(n.v))
	sb.WriteByte('\n')
	if n.l != nil {
		if tail {
			u.prettySideways(sb, prefix+spcPad, true, n.l)
		} else {
			u.prettySideways(sb, prefix+barPad, true, n.l)
		}
	}
}

func (u *BinaryTree[T]) prettyPreOrder(sb *strings.Builder, padding, ptr string, n *Node[T], hasRightSibling bool) {
	if n == nil {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(padding)
	sb.WriteString(ptr)
	sb.WriteString(u.format(n.v))
	if hasRightSibling {
		padding += barPad
	} else {
		padding += spcPad
	}
	ptrL := ptrLast
	if n.r != nil {
		ptrL = ptrMid
	}
	u.prettyPreOrder(sb, padding, ptrL, n.l, n.r != nil)
	u.prettyPreOrder(sb, padding, ptrLast, n.r, false)
}

// String implements fmt.Stringer and containers.Container.
func (u *BinaryTree[T]) String() string {
	return "BinaryTree\n" + u.Pretty(PrettySideways)
}

// Dump the node graph using github.com/kr/pretty. Debugging only.
func (u *BinaryTree[T]) Dump() string {
	return pretty.Sprint(u.root)
}

// ToJSON renders the node graph as nested {"data","left","right"} objects,
// null for the empty tree. Debugging only, there is no matching decoder.
func (u *BinaryTree[T]) ToJSON() ([]byte, error) {
	return json.Marshal(u.root)
}

// MarshalJSON implements json.Marshaler, see ToJSON.
func (u *BinaryTree[T]) MarshalJSON() ([]byte, error) {
	return u.ToJSON()
}
