package livevars

import (
	"github.com/cs-au-dk/latmap/analysis/dataflow"
	L "github.com/cs-au-dk/latmap/analysis/lattice"

	"golang.org/x/tools/go/ssa"
)

// State binds live SSA values, keyed by dataflow.ValueKey, to ⊤. Dead values
// are unbound.
type State = L.FlatMap[string, L.TwoElement]

var policy = L.BotDefault(L.TwoElementBot())

// NewState creates a state in which every value is dead.
func NewState() *State {
	return L.NewFlatMap[string, L.TwoElement](L.Ordered[string](), policy)
}

type problem struct{}

// LiveVars computes the values of fun that are live at every block
// boundary. Since the analysis is backward, the input of a block is the set
// of values live at its exit, and the output the set live at its entry.
func LiveVars(fun *ssa.Function) *dataflow.Result[string, L.TwoElement] {
	return dataflow.Solve[string, L.TwoElement](fun, problem{})
}

func (problem) Direction() dataflow.Direction {
	return dataflow.Backward
}

// Nothing is live after returning.
func (problem) Boundary(*ssa.BasicBlock) *State {
	return NewState()
}

func (problem) Confluence(acc, in *State) {
	acc.UnionWith(L.JoinOf[L.TwoElement], in)
}

func (problem) Transfer(b *ssa.BasicBlock, st *State) *State {
	// φ-node operands are used at the end of the corresponding predecessor.
	for _, succ := range b.Succs {
		edge := predIndex(succ, b)
		for _, instr := range succ.Instrs {
			phi, ok := instr.(*ssa.Phi)
			if !ok {
				break
			}
			use(st, phi.Edges[edge])
		}
	}

	for i := len(b.Instrs) - 1; i >= 0; i-- {
		instr := b.Instrs[i]
		if v, ok := instr.(ssa.Value); ok {
			st.Remove(dataflow.ValueKey(v))
		}
		if _, ok := instr.(*ssa.Phi); ok {
			continue
		}

		for _, op := range instr.Operands(nil) {
			if *op != nil {
				use(st, *op)
			}
		}
	}
	return st
}

func use(st *State, v ssa.Value) {
	switch v.(type) {
	case *ssa.Const, *ssa.Global, *ssa.Function, *ssa.Builtin:
		return
	}
	st.InsertOrAssign(dataflow.ValueKey(v), L.TwoElementTop())
}

func predIndex(b, pred *ssa.BasicBlock) int {
	for i, p := range b.Preds {
		if p == pred {
			return i
		}
	}
	panic(errUnknownEdge(pred, b))
}
