package Trees

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

func TestGodsContainer(t *testing.T) {
	tree := New(Config[int]{Comparator: GodsComparator[int](utils.IntComparator)})
	var c containers.Container = tree
	require.True(t, c.Empty())

	tree.InsertMany(5, 2, 7, 8, 3, 1)
	require.False(t, c.Empty())
	require.Equal(t, 6, c.Size())
	require.Equal(t, []interface{}{1, 2, 3, 5, 7, 8}, c.Values())
	require.Equal(t, []interface{}{1, 2, 3, 5, 7, 8}, containers.GetSortedValues(c, utils.IntComparator))
	require.True(t, strings.HasPrefix(c.String(), "BSTree\n"))

	c.Clear()
	require.Equal(t, 0, tree.Size())
	require.Empty(t, tree.ToArray())
}

func TestGodsComparator_Strings(t *testing.T) {
	tree := New(Config[string]{Comparator: GodsComparator[string](utils.StringComparator)})
	tree.InsertMany("pear", "apple", "fig", "apple")
	require.Equal(t, []string{"apple", "fig", "pear"}, tree.ToArray())
	p, ok := tree.FindPath("fig")
	require.True(t, ok)
	require.Equal(t, []string{"pear", "apple", "fig"}, p)
}

func TestToJSON(t *testing.T) {
	tree := NewOrdered(Config[int]{})
	b, err := tree.ToJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(b))

	tree.InsertMany(2, 1, 3)
	b, err = tree.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t,
		`{"data":2,"left":{"data":1,"left":null,"right":null},"right":{"data":3,"left":null,"right":null}}`,
		string(b))

	m, err := json.Marshal(tree)
	require.NoError(t, err)
	require.Equal(t, b, m)
}

func TestDump(t *testing.T) {
	tree := NewOrdered(Config[int]{})
	tree.InsertMany(2, 1)
	d := tree.Dump()
	require.Contains(t, d, "v:")
	require.Contains(t, d, "2")
	require.Contains(t, d, "1")
}

func TestPretty(t *testing.T) {
	tree := NewOrdered(Config[int]{})
	require.Equal(t, "", tree.Pretty(PrettySideways))
	require.Equal(t, "", tree.Pretty(PrettyPreOrder))

	tree.InsertMany(5, 2, 7)
	require.Equal(t, "│   ┌── 7\n└── 5\n    └── 2\n", tree.Pretty(PrettySideways))
	require.Equal(t, "5\n├── 2\n└── 7", tree.Pretty(PrettyPreOrder))

	// every node appears exactly once in both renderings.
	for range 20 {
		tree.Insert(rg.Intn(1000))
	}
	for _, s := range []PrettyStyle{PrettySideways, PrettyPreOrder} {
		lines := strings.Split(strings.TrimSuffix(tree.Pretty(s), "\n"), "\n")
		require.Len(t, lines, tree.Size())
	}
}
