package dataflow

import "golang.org/x/tools/go/ssa"

// ValueKey names an SSA value in a state keyed by strings. Registers keep
// their SSA name. Parameters and free variables are prefixed with '$', which
// cannot occur in a Go identifier, so a parameter named like a register
// never shares its key.
func ValueKey(v ssa.Value) string {
	switch v.(type) {
	case *ssa.Parameter, *ssa.FreeVar:
		return "$" + v.Name()
	}
	return v.Name()
}
