package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// BSTree never rebalances, so the benchmarks use random insertion orders,
// where its depth stays logarithmic.
const bAddN = 1 << 15

var (
	bKeys   = rand.New(rand.NewSource(1)).Perm(bAddN)
	sideEff bool
)

func BenchmarkBSTree_Insert(b *testing.B) {
	for range b.N {
		tree := NewOrdered(Config[int]{})
		for _, k := range bKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for _, k := range bKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkBSTree_Find(b *testing.B) {
	tree := NewOrdered(Config[int]{})
	tree.InsertMany(bKeys...)
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			sideEff = tree.Has(k)
		}
	}
}

func BenchmarkBTree_Find(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, k := range bKeys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			sideEff = tree.Has(k)
		}
	}
}

func BenchmarkLLRB_Find(b *testing.B) {
	tree := llrb.New()
	for _, k := range bKeys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			sideEff = tree.Has(llrb.Int(k))
		}
	}
}

func BenchmarkRedBlack_Find(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for _, k := range bKeys {
		tree.Put(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			_, sideEff = tree.Get(k)
		}
	}
}

func BenchmarkBSTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := NewOrdered(Config[int]{})
		tree.InsertMany(bKeys...)
		b.StartTimer()
		for k := range bAddN {
			tree.Remove(k)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := btree.NewOrderedG[int](32)
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Delete(k)
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := llrb.New()
		for _, k := range bKeys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkRedBlack_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			tree.Put(k, struct{}{})
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Remove(k)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	sorted := make([]int, bAddN)
	for i := range sorted {
		sorted[i] = i
	}
	b.ResetTimer()
	for range b.N {
		if _, err := BuildOrdered(sorted, Config[int]{}); err != nil {
			b.Fatal(err)
		}
	}
}
