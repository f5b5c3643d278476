package intervals

import (
	"go/constant"
	"go/token"
	"go/types"
	"math"

	"github.com/cs-au-dk/latmap/analysis/dataflow"
	L "github.com/cs-au-dk/latmap/analysis/lattice"

	"golang.org/x/tools/go/ssa"
)

// State binds integer SSA values, keyed by dataflow.ValueKey, to the
// interval of values they may hold. Unbound keys are ⊥, i.e., not yet
// defined on any path.
type State = L.FlatMap[string, L.Interval]

var policy = L.BotDefault(L.IntervalBot())

// NewState creates an empty state.
func NewState() *State {
	return L.NewFlatMap[string, L.Interval](L.Ordered[string](), policy)
}

type problem struct{}

// Analyze computes the intervals of the integer values of fun at the entry
// and exit of every basic block.
func Analyze(fun *ssa.Function) *dataflow.Result[string, L.Interval] {
	return dataflow.Solve[string, L.Interval](fun, problem{})
}

func (problem) Direction() dataflow.Direction {
	return dataflow.Forward
}

// Boundary binds integer parameters and free variables to ⊤, since nothing
// is known about them at function entry.
func (problem) Boundary(b *ssa.BasicBlock) *State {
	st := NewState()
	fun := b.Parent()
	for _, p := range fun.Params {
		if isInteger(p.Type()) {
			st.InsertOrAssign(dataflow.ValueKey(p), L.IntervalTop())
		}
	}
	for _, fv := range fun.FreeVars {
		if isInteger(fv.Type()) {
			st.InsertOrAssign(dataflow.ValueKey(fv), L.IntervalTop())
		}
	}
	return st
}

func (problem) Confluence(acc, in *State) {
	acc.UnionWith(L.JoinOf[L.Interval], in)
}

func (problem) Widen(prev, next *State) {
	next.UnionWith(func(n, p L.Interval) L.Interval {
		return p.Widen(n)
	}, prev)
}

func (problem) Transfer(b *ssa.BasicBlock, st *State) *State {
	for _, instr := range b.Instrs {
		v, ok := instr.(ssa.Value)
		if !ok || !isInteger(v.Type()) {
			continue
		}
		st.InsertOrAssign(dataflow.ValueKey(v), evaluate(st, v))
	}
	return st
}

// evaluate computes the interval of the value defined by an instruction.
func evaluate(st *State, v ssa.Value) L.Interval {
	switch v := v.(type) {
	case *ssa.BinOp:
		x, y := operand(st, v.X), operand(st, v.Y)
		switch v.Op {
		case token.ADD:
			return x.Plus(y)
		case token.SUB:
			return x.Minus(y)
		case token.MUL:
			return x.Mult(y)
		}
	case *ssa.UnOp:
		if v.Op == token.SUB {
			return operand(st, v.X).Neg()
		}
	case *ssa.Phi:
		res := L.IntervalBot()
		for _, edge := range v.Edges {
			res = res.Join(operand(st, edge))
		}
		return res
	}
	return L.IntervalTop()
}

// operand looks up the interval of an instruction operand.
func operand(st *State, v ssa.Value) L.Interval {
	switch v := v.(type) {
	case *ssa.Const:
		return constInterval(v)
	case *ssa.Parameter, *ssa.FreeVar, ssa.Instruction:
		if isInteger(v.Type()) {
			return st.At(dataflow.ValueKey(v))
		}
	}
	return L.IntervalTop()
}

func constInterval(c *ssa.Const) L.Interval {
	if c.Value == nil {
		// Zero value of the type.
		return L.Constant(0)
	}
	if c.Value.Kind() != constant.Int {
		return L.IntervalTop()
	}
	if x, exact := constant.Int64Val(c.Value); exact && x >= math.MinInt && x <= math.MaxInt {
		return L.Constant(int(x))
	}
	return L.IntervalTop()
}

func isInteger(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsInteger != 0
}
