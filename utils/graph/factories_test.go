package graph

import (
	"testing"

	"github.com/cs-au-dk/latmap/pkgutil"

	"golang.org/x/exp/slices"
)

const source = `package test

func f(c bool) int {
	if c {
		return 1
	}
	return 2
}

func g(n int) int {
	for n > 0 {
		n--
	}
	return n
}
`

func TestBasicBlockGraphsStayInFunction(t *testing.T) {
	pkg, err := pkgutil.BuildSource("test.go", source)
	if err != nil {
		t.Fatal(err)
	}
	f, g := pkg.Func("f"), pkg.Func("g")

	succs, preds := FromBasicBlocks(f), Reverse(f)
	for _, b := range f.Blocks {
		if es := succs.Edges(b); !slices.Equal(es, b.Succs) {
			t.Errorf("Block %d of f: successors %v, expected %v", b.Index, es, b.Succs)
		}
		if es := preds.Edges(b); !slices.Equal(es, b.Preds) {
			t.Errorf("Block %d of f: predecessors %v, expected %v", b.Index, es, b.Preds)
		}
	}
	for _, b := range g.Blocks {
		if es := succs.Edges(b); len(es) != 0 {
			t.Errorf("Block %d of g has successors %v in the graph of f", b.Index, es)
		}
		if es := preds.Edges(b); len(es) != 0 {
			t.Errorf("Block %d of g has predecessors %v in the graph of f", b.Index, es)
		}
	}
}
