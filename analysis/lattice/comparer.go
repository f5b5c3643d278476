package lattice

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// Comparer is a strict total order on keys. Compare returns a negative
// number if a < b, a positive number if a > b, and 0 if a and b are equal.
type Comparer[K any] interface {
	Compare(a, b K) int
}

// CompareFunc adapts a three-way comparison function to a Comparer.
type CompareFunc[K any] func(a, b K) int

func (f CompareFunc[K]) Compare(a, b K) int {
	return f(a, b)
}

type orderedComparer[K constraints.Ordered] struct{}

func (orderedComparer[K]) Compare(a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Ordered returns the natural comparer for keys with a built-in ordering.
func Ordered[K constraints.Ordered]() Comparer[K] {
	return orderedComparer[K]{}
}

var (
	_ Comparer[int]           = CompareFunc[int](nil)
	_ immutable.Comparer[int] = orderedComparer[int]{}
)
