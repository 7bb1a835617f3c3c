package Trees

// nodeQueue is a growable circular array FIFO of nodes used by the breadth
// first walks. The zero value is an empty queue with no capacity.
type nodeQueue[T any] struct {
	sz, head, tail int
	content        []*Node[T]
}

func makeNodeQueue[T any](initCap int) nodeQueue[T] {
	return nodeQueue[T]{content: make([]*Node[T], max(initCap, 1))}
}

func (q *nodeQueue[T]) empty() bool {
	return q.sz == 0
}

func (q *nodeQueue[T]) resize(newLen int) {
	nc := make([]*Node[T], newLen)
	if q.head < q.tail {
		copy(nc, q.content[q.head:q.tail])
	} else if q.sz > 0 {
		copy(nc, q.content[q.head:])
		copy(nc[len(q.content)-q.head:], q.content[:q.tail])
	}
	q.content, q.head, q.tail = nc, 0, q.sz
}

func (q *nodeQueue[T]) push(n *Node[T]) {
	if q.sz == len(q.content) {
		q.resize(q.sz*3/2 + 1)
	}
	q.content[q.tail] = n
	q.tail = (q.tail + 1) % len(q.content)
	q.sz++
}

// pop the oldest node. Returns nil when the queue is empty.
func (q *nodeQueue[T]) pop() *Node[T] {
	if q.empty() {
		return nil
	}
	n := q.content[q.head]
	q.content[q.head] = nil
	q.head = (q.head + 1) % len(q.content)
	q.sz--
	return n
}

// LevelOrder visits the subtree rooted at n breadth first, each level left to
// right. visit receives the depth of the node, 0 for n itself.
// Time: O(n); Space: O(width)
func LevelOrder[T any](n *Node[T], visit func(node *Node[T], depth int)) {
	if n == nil {
		return
	}
	q := makeNodeQueue[T](16)
	q.push(n)
	for d := 0; !q.empty(); d++ {
		for w := q.sz; w > 0; w-- {
			cur := q.pop()
			visit(cur, d)
			if cur.l != nil {
				q.push(cur.l)
			}
			if cur.r != nil {
				q.push(cur.r)
			}
		}
	}
}

// TraverseLevelOrder [LevelOrder] over the whole tree.
func (u *BinaryTree[T]) TraverseLevelOrder(visit func(node *Node[T], depth int)) {
	LevelOrder(u.root, visit)
}

// Levels returns the values of the tree grouped by depth, root level first.
// len(result)==Height().
func (u *BinaryTree[T]) Levels() [][]T {
	var lv [][]T
	u.TraverseLevelOrder(func(n *Node[T], d int) {
		if d == len(lv) {
			lv = append(lv, nil)
		}
		lv[d] = append(lv[d], n.v)
	})
	return lv
}
