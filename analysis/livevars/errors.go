package livevars

import (
	"fmt"

	"golang.org/x/tools/go/ssa"
)

var errUnknownEdge = func(from, to *ssa.BasicBlock) error {
	return fmt.Errorf("block %d is not a predecessor of block %d in %s", from.Index, to.Index, to.Parent())
}
