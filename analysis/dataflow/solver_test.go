package dataflow

import (
	"testing"

	L "github.com/cs-au-dk/latmap/analysis/lattice"
	"github.com/cs-au-dk/latmap/pkgutil"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/ssa"
)

// paths collects the indices of the blocks on some path to (or from) a block.
type paths struct{ dir Direction }

func (p paths) Direction() Direction { return p.dir }

func (paths) Boundary(*ssa.BasicBlock) *L.FlatMap[int, L.TwoElement] {
	return L.NewFlatMap[int, L.TwoElement](L.Ordered[int](), L.BotDefault(L.TwoElementBot()))
}

func (paths) Confluence(acc, in *L.FlatMap[int, L.TwoElement]) {
	acc.UnionWith(L.JoinOf[L.TwoElement], in)
}

func (paths) Transfer(b *ssa.BasicBlock, st *L.FlatMap[int, L.TwoElement]) *L.FlatMap[int, L.TwoElement] {
	return st.InsertOrAssign(b.Index, L.TwoElementTop())
}

const source = `package test

func loop(n int) int {
	s := 0
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			s++
		}
	}
	return s
}

func spin() {
	for {
	}
}
`

func load(t *testing.T, name string) *ssa.Function {
	pkg, err := pkgutil.BuildSource("test.go", source)
	if err != nil {
		t.Fatal(err)
	}
	return pkg.Func(name)
}

func exit(fun *ssa.Function) *ssa.BasicBlock {
	for _, b := range fun.Blocks {
		if len(b.Succs) == 0 {
			return b
		}
	}
	return nil
}

func allBlocks(fun *ssa.Function) []int {
	var idxs []int
	for _, b := range fun.Blocks {
		idxs = append(idxs, b.Index)
	}
	return idxs
}

func TestForwardReachesEveryBlock(t *testing.T) {
	fun := load(t, "loop")
	res := Solve[int, L.TwoElement](fun, paths{Forward})

	for _, b := range fun.Blocks {
		out, found := res.Out[b]
		if !found {
			t.Fatalf("Block %d was never visited", b.Index)
		}
		if !out.Contains(b.Index) || !out.Contains(0) {
			t.Errorf("Block %d: %s should contain itself and the entry", b.Index, out)
		}
	}

	// Every block lies on a path to the exit, since the loop may run any
	// number of times.
	if keys := res.Out[exit(fun)].Keys(); !slices.Equal(keys, allBlocks(fun)) {
		t.Errorf("Blocks on paths to exit: %v, expected %v", keys, allBlocks(fun))
	}
}

func TestBackwardReachesEveryBlock(t *testing.T) {
	fun := load(t, "loop")
	res := Solve[int, L.TwoElement](fun, paths{Backward})

	entry := fun.Blocks[0]
	if keys := res.Out[entry].Keys(); !slices.Equal(keys, allBlocks(fun)) {
		t.Errorf("Blocks on paths from entry: %v, expected %v", keys, allBlocks(fun))
	}
	if in := res.In[exit(fun)]; !in.IsEmpty() {
		t.Errorf("Expected empty boundary state, got %s", in)
	}
}

func TestBackwardWithoutExit(t *testing.T) {
	fun := load(t, "spin")
	res := Solve[int, L.TwoElement](fun, paths{Backward})

	if len(res.In) != 0 || len(res.Out) != 0 {
		t.Errorf("Expected no states for a function that never returns, got %v", res.Out)
	}
}

func TestRevisitsOnlyOnChange(t *testing.T) {
	fun := load(t, "loop")
	res := Solve[int, L.TwoElement](fun, paths{Forward})

	for b, visits := range res.Visits {
		if visits > 2*len(fun.Blocks) {
			t.Errorf("Block %d visited %d times", b.Index, visits)
		}
	}
}
