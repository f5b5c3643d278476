package dot

import (
	"fmt"
	"strings"

	"golang.org/x/tools/go/ssa"
)

// Annotation yields the states holding before and after a block. Absent
// states are rendered as "unreachable".
type Annotation func(*ssa.BasicBlock) (before, after fmt.Stringer)

// BlockGraph builds the control flow graph of fun, where every block node
// lists its instructions between the states given by annotate.
func BlockGraph(fun *ssa.Function, annotate Annotation) *DotGraph {
	g := &DotGraph{
		Title:   fun.String(),
		Options: map[string]string{},
	}

	nodes := make(map[*ssa.BasicBlock]*DotNode, len(fun.Blocks))
	for _, b := range fun.Blocks {
		before, after := annotate(b)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d: %s\n", b.Index, b.Comment)
		fmt.Fprintf(&sb, "%s\n", label(before))
		for _, instr := range b.Instrs {
			if v, ok := instr.(ssa.Value); ok {
				fmt.Fprintf(&sb, "  %s = %s\n", v.Name(), instr)
			} else {
				fmt.Fprintf(&sb, "  %s\n", instr)
			}
		}
		fmt.Fprintf(&sb, "%s\n", label(after))

		node := &DotNode{
			ID:    fmt.Sprintf("b%d", b.Index),
			Attrs: DotAttrs{"label": sb.String()},
		}
		if b.Index == 0 {
			node.Attrs["fillcolor"] = "lightblue"
		}
		nodes[b] = node
		g.Nodes = append(g.Nodes, node)
	}

	for _, b := range fun.Blocks {
		for _, succ := range b.Succs {
			g.Edges = append(g.Edges, &DotEdge{
				From:  nodes[b],
				To:    nodes[succ],
				Attrs: DotAttrs{},
			})
		}
	}
	return g
}

func label(s fmt.Stringer) string {
	if s == nil {
		return "unreachable"
	}
	return s.String()
}
