package graph

import "golang.org/x/tools/go/ssa"

// FromBasicBlocks creates the control flow graph of fun, with edges from
// every block to its successors. Blocks of other functions have no edges.
func FromBasicBlocks(fun *ssa.Function) Graph[*ssa.BasicBlock] {
	return OfHashable(func(b *ssa.BasicBlock) []*ssa.BasicBlock {
		if b.Parent() != fun {
			return nil
		}
		return b.Succs
	})
}

// Reverse creates the control flow graph of fun, with edges from every block
// to its predecessors. Blocks of other functions have no edges.
func Reverse(fun *ssa.Function) Graph[*ssa.BasicBlock] {
	return OfHashable(func(b *ssa.BasicBlock) []*ssa.BasicBlock {
		if b.Parent() != fun {
			return nil
		}
		return b.Preds
	})
}
