package lattice

import (
	"errors"
	"fmt"

	"github.com/cs-au-dk/latmap/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

var (
	// ErrUndefinedOperation is returned when an ordering comparison is requested
	// on a map whose value policy cannot support it, i.e. the policy does not
	// order its values, or its default value is neither ⊤ nor ⊥.
	ErrUndefinedOperation = errors.New("UndefinedOperationError")

	errUnsupportedOperation = errors.New("UnsupportedOperationError")
	errPatternMatch         = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)
