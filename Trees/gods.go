package Trees

import "github.com/emirpasic/gods/containers"

// BSTree can be used wherever github.com/emirpasic/gods expects a container,
// e.g. containers.GetSortedValues.
var (
	_ Tree[int]                 = (*BSTree[int])(nil)
	_ containers.Container      = (*BSTree[int])(nil)
	_ containers.JSONSerializer = (*BSTree[int])(nil)
)
