package lattice

import "fmt"

type flatKind uint8

const (
	flatBot flatKind = iota
	flatValue
	flatTop
)

// Flat is a member of the flat lattice over T:
//
//	      ⊤
//	 /  / | \  \
//	c1 c2 ... cn
//	 \  \ | /  /
//	      ⊥
//
// It is used for constant propagation, where c ∈ T is a known constant.
type Flat[T comparable] struct {
	kind  flatKind
	value T
}

// FlatBot yields ⊥ of the flat lattice over T.
func FlatBot[T comparable]() Flat[T] {
	return Flat[T]{kind: flatBot}
}

// FlatTop yields ⊤ of the flat lattice over T.
func FlatTop[T comparable]() Flat[T] {
	return Flat[T]{kind: flatTop}
}

// FlatConst lifts c into the flat lattice over T.
func FlatConst[T comparable](c T) Flat[T] {
	return Flat[T]{flatValue, c}
}

func (e Flat[T]) IsBot() bool {
	return e.kind == flatBot
}

func (e Flat[T]) IsTop() bool {
	return e.kind == flatTop
}

// Value unpacks the constant. The boolean is false for ⊥ and ⊤.
func (e Flat[T]) Value() (T, bool) {
	return e.value, e.kind == flatValue
}

// Is checks whether the element is the constant c.
func (e Flat[T]) Is(c T) bool {
	return e.kind == flatValue && e.value == c
}

func (e Flat[T]) String() string {
	switch e.kind {
	case flatBot:
		return colorize.Element("⊥")
	case flatTop:
		return colorize.Element("⊤")
	}
	return colorize.Const(fmt.Sprintf("%v", e.value))
}

func (e1 Flat[T]) Eq(e2 Flat[T]) bool {
	return e1 == e2
}

func (e1 Flat[T]) Leq(e2 Flat[T]) bool {
	switch {
	case e1.kind == flatBot || e2.kind == flatTop:
		return true
	case e1.kind == flatTop || e2.kind == flatBot:
		return false
	}
	return e1.value == e2.value
}

func (e1 Flat[T]) Geq(e2 Flat[T]) bool {
	return e2.Leq(e1)
}

func (e1 Flat[T]) Join(e2 Flat[T]) Flat[T] {
	switch {
	case e1.Leq(e2):
		return e2
	case e2.Leq(e1):
		return e1
	}
	return FlatTop[T]()
}

func (e1 Flat[T]) Meet(e2 Flat[T]) Flat[T] {
	switch {
	case e1.Leq(e2):
		return e1
	case e2.Leq(e1):
		return e2
	}
	return FlatBot[T]()
}

var _ Domain[Flat[int]] = Flat[int]{}
