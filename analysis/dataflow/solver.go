package dataflow

import (
	"log"

	L "github.com/cs-au-dk/latmap/analysis/lattice"
	"github.com/cs-au-dk/latmap/utils"
	"github.com/cs-au-dk/latmap/utils/graph"
	"github.com/cs-au-dk/latmap/utils/worklist"

	"golang.org/x/tools/go/ssa"
)

var opts = utils.Opts()

// Direction determines whether facts flow along or against control flow edges.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Problem describes a monotone dataflow problem over the basic blocks of a
// function, where every abstract state is a sparse lattice map.
type Problem[K, V any] interface {
	Direction() Direction
	// Boundary yields the input state of a boundary block, i.e., the entry
	// block for forward problems, or a block without successors for backward
	// problems.
	Boundary(*ssa.BasicBlock) *L.FlatMap[K, V]
	// Confluence merges in into acc.
	Confluence(acc, in *L.FlatMap[K, V])
	// Transfer computes the output state of a block from its input state.
	// The input state may be modified and returned.
	Transfer(*ssa.BasicBlock, *L.FlatMap[K, V]) *L.FlatMap[K, V]
}

// Widener is implemented by problems over lattices of infinite height.
type Widener[K, V any] interface {
	// Widen extrapolates prev with next, storing the result in next.
	Widen(prev, next *L.FlatMap[K, V])
}

// Result holds the input and output states of every block. For forward
// problems the input is the state at the block entry, and the output the
// state at the block exit. For backward problems it is the other way around.
// Blocks for which no input was ever computed are absent.
type Result[K, V any] struct {
	In  map[*ssa.BasicBlock]*L.FlatMap[K, V]
	Out map[*ssa.BasicBlock]*L.FlatMap[K, V]
	// Visits counts how many times the transfer function was applied to a block.
	Visits map[*ssa.BasicBlock]int
}

// Solve computes a fixpoint of the problem for the given function by chaotic
// iteration with a worklist. Only blocks connected to a boundary block are
// visited, and a block is revisited whenever the output of one of its sources
// changes.
func Solve[K, V any](fun *ssa.Function, P Problem[K, V]) *Result[K, V] {
	res := &Result[K, V]{
		In:     make(map[*ssa.BasicBlock]*L.FlatMap[K, V]),
		Out:    make(map[*ssa.BasicBlock]*L.FlatMap[K, V]),
		Visits: make(map[*ssa.BasicBlock]int),
	}
	if len(fun.Blocks) == 0 {
		return res
	}

	dir := P.Direction()
	opts.OnVerbose(func() {
		log.Printf("Starting %s analysis of %s...", dir, fun)
	})

	// Blocks are initially visited such that the sources of a block are
	// visited before it, except along loops.
	// Inputs come from predecessors and outputs go to successors in a forward
	// analysis, and vice versa in a backward analysis.
	sources, dependents := preds, succs
	isBoundary := func(b *ssa.BasicBlock) bool { return b.Index == 0 }
	order := graph.FromBasicBlocks(fun).SCC(fun.Blocks[:1]).TopologicalOrder()
	if dir == Backward {
		sources, dependents = succs, preds
		isBoundary = func(b *ssa.BasicBlock) bool { return len(b.Succs) == 0 }

		var exits []*ssa.BasicBlock
		for _, b := range fun.Blocks {
			if isBoundary(b) {
				exits = append(exits, b)
			}
		}
		order = graph.Reverse(fun).SCC(exits).TopologicalOrder()
	}

	widener, canWiden := P.(Widener[K, V])
	W := worklist.Empty[*ssa.BasicBlock]()
	for _, b := range order {
		W.Add(b)
	}

	W.Process(func(b *ssa.BasicBlock, add func(*ssa.BasicBlock)) {
		var in *L.FlatMap[K, V]
		if isBoundary(b) {
			in = P.Boundary(b)
		}
		for _, src := range sources(b) {
			out, found := res.Out[src]
			if !found {
				continue
			}
			if in == nil {
				in = out.Clone()
			} else {
				P.Confluence(in, out)
			}
		}
		if in == nil {
			// No input has reached the block yet.
			return
		}

		if prev, found := res.In[b]; found && canWiden && res.Visits[b] >= opts.WideningDelay() {
			widener.Widen(prev, in)
		}
		res.In[b] = in
		res.Visits[b]++

		out := P.Transfer(b, in.Clone())
		if prev, found := res.Out[b]; found && prev.Equals(out) {
			return
		}
		res.Out[b] = out
		for _, dep := range dependents(b) {
			add(dep)
		}
	})

	opts.OnVerbose(func() {
		visits := 0
		for _, v := range res.Visits {
			visits += v
		}
		log.Printf("Finished %s analysis of %s after %d block visits", dir, fun, visits)
	})
	return res
}

func preds(b *ssa.BasicBlock) []*ssa.BasicBlock { return b.Preds }
func succs(b *ssa.BasicBlock) []*ssa.BasicBlock { return b.Succs }
