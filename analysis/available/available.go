package available

import (
	"github.com/cs-au-dk/latmap/analysis/dataflow"
	L "github.com/cs-au-dk/latmap/analysis/lattice"

	"golang.org/x/tools/go/ssa"
)

// State binds the SSA values whose definitions have been executed on every
// path reaching a program point to ⊤. Values are keyed by dataflow.ValueKey.
type State = L.FlatMap[string, L.TwoElement]

var policy = L.BotDefault(L.TwoElementBot())

func NewState() *State {
	return L.NewFlatMap[string, L.TwoElement](L.Ordered[string](), policy)
}

type problem struct{}

// Available computes the definitions of fun that are available at the entry
// and exit of every block. This is a must-analysis: facts from different
// predecessors are intersected.
func Available(fun *ssa.Function) *dataflow.Result[string, L.TwoElement] {
	return dataflow.Solve[string, L.TwoElement](fun, problem{})
}

func (problem) Direction() dataflow.Direction {
	return dataflow.Forward
}

func (problem) Boundary(*ssa.BasicBlock) *State {
	return NewState()
}

func (problem) Confluence(acc, in *State) {
	acc.IntersectionWith(L.MeetOf[L.TwoElement], in)
}

func (problem) Transfer(b *ssa.BasicBlock, st *State) *State {
	for _, instr := range b.Instrs {
		if name, ok := definition(instr); ok {
			st.InsertOrAssign(name, L.TwoElementTop())
		}
	}
	return st
}

// definition yields the name of the value defined by instr, if any.
func definition(instr ssa.Instruction) (string, bool) {
	if v, ok := instr.(ssa.Value); ok {
		return dataflow.ValueKey(v), true
	}
	return "", false
}
