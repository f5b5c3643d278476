package lattice

import (
	"fmt"
	"math"
	"strconv"
)

// IntervalBound is implemented by all interval bounds, i.e., any FiniteBound
// value, PlusInfinity and MinusInfinity. The ordering of bounds is
// -∞ < c < ∞, where c ∈ ℤ.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the bound is ±∞.
	IsInfinite() bool

	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2.
	Leq(IntervalBound) bool
	// Lt computes b1 < b2.
	Lt(IntervalBound) bool

	// Plus computes b1 + b2. ∞ + -∞ is undefined and panics. Finite results
	// that do not fit in an int saturate to ±∞, as do those of Neg and Mult.
	Plus(IntervalBound) IntervalBound
	// Neg computes -b.
	Neg() IntervalBound
	// Mult computes b1 * b2, where 0 * ±∞ = 0.
	Mult(IntervalBound) IntervalBound
}

type (
	// FiniteBound is a finite limit of an interval.
	FiniteBound int
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// rank orders the kinds of bounds: -∞ < c < ∞.
func rank(b IntervalBound) int {
	switch b.(type) {
	case MinusInfinity:
		return -1
	case FiniteBound:
		return 0
	case PlusInfinity:
		return 1
	}
	panic(errPatternMatch(b))
}

// sign is -1, 0 or 1 according to the sign of b.
func sign(b IntervalBound) int {
	switch b := b.(type) {
	case FiniteBound:
		switch {
		case b < 0:
			return -1
		case b > 0:
			return 1
		}
		return 0
	default:
		return rank(b)
	}
}

func (FiniteBound) IsInfinite() bool   { return false }
func (PlusInfinity) IsInfinite() bool  { return true }
func (MinusInfinity) IsInfinite() bool { return true }

func (b FiniteBound) String() string { return strconv.Itoa(int(b)) }
func (PlusInfinity) String() string  { return "∞" }
func (MinusInfinity) String() string { return "-∞" }

func (b1 FiniteBound) Eq(b2 IntervalBound) bool   { return b1 == b2 }
func (b1 PlusInfinity) Eq(b2 IntervalBound) bool  { return b1 == b2 }
func (b1 MinusInfinity) Eq(b2 IntervalBound) bool { return b1 == b2 }

func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	if b2, ok := b2.(FiniteBound); ok {
		return b1 <= b2
	}
	return rank(b2) > 0
}

func (PlusInfinity) Leq(b2 IntervalBound) bool {
	return rank(b2) > 0
}

func (MinusInfinity) Leq(IntervalBound) bool {
	return true
}

func (b1 FiniteBound) Lt(b2 IntervalBound) bool {
	if b2, ok := b2.(FiniteBound); ok {
		return b1 < b2
	}
	return rank(b2) > 0
}

func (PlusInfinity) Lt(IntervalBound) bool {
	return false
}

func (MinusInfinity) Lt(b2 IntervalBound) bool {
	return rank(b2) > -1
}

func (b1 FiniteBound) Plus(b2 IntervalBound) IntervalBound {
	f2, ok := b2.(FiniteBound)
	if !ok {
		return b2
	}
	switch s := b1 + f2; {
	case b1 > 0 && f2 > 0 && s < 0:
		return PlusInfinity{}
	case b1 < 0 && f2 < 0 && s >= 0:
		return MinusInfinity{}
	default:
		return s
	}
}

func (b1 PlusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(MinusInfinity); ok {
		panic(fmt.Errorf("%w: ∞ + -∞", errUnsupportedOperation))
	}
	return b1
}

func (b1 MinusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(PlusInfinity); ok {
		panic(fmt.Errorf("%w: -∞ + ∞", errUnsupportedOperation))
	}
	return b1
}

func (b FiniteBound) Neg() IntervalBound {
	if b == math.MinInt {
		return PlusInfinity{}
	}
	return -b
}
func (PlusInfinity) Neg() IntervalBound  { return MinusInfinity{} }
func (MinusInfinity) Neg() IntervalBound { return PlusInfinity{} }

func (b1 FiniteBound) Mult(b2 IntervalBound) IntervalBound {
	f2, ok := b2.(FiniteBound)
	if !ok {
		return infiniteProduct(b1, b2)
	}
	p := b1 * f2
	if b1 != 0 && (p/b1 != f2 || (b1 == -1 && f2 == math.MinInt)) {
		// Overflow. Neither factor is 0, so the product takes the sign of both.
		return infiniteProduct(b1, b2)
	}
	return p
}

func (b1 PlusInfinity) Mult(b2 IntervalBound) IntervalBound {
	return infiniteProduct(b1, b2)
}

func (b1 MinusInfinity) Mult(b2 IntervalBound) IntervalBound {
	return infiniteProduct(b1, b2)
}

// infiniteProduct multiplies two bounds whose product is not a finite int.
func infiniteProduct(b1, b2 IntervalBound) IntervalBound {
	switch sign(b1) * sign(b2) {
	case 1:
		return PlusInfinity{}
	case -1:
		return MinusInfinity{}
	}
	return FiniteBound(0)
}

func minBound(b1, b2 IntervalBound) IntervalBound {
	if b1.Leq(b2) {
		return b1
	}
	return b2
}

func maxBound(b1, b2 IntervalBound) IntervalBound {
	if b1.Leq(b2) {
		return b2
	}
	return b1
}

// Interval is a member of the interval lattice. Every interval with a lower
// bound greater than its upper bound is represented as ⊥ = [∞, -∞].
type Interval struct {
	low  IntervalBound
	high IntervalBound
}

var (
	intervalBot = Interval{PlusInfinity{}, MinusInfinity{}}
	intervalTop = Interval{MinusInfinity{}, PlusInfinity{}}
)

// IntervalBot yields ⊥ = [∞, -∞].
func IntervalBot() Interval {
	return intervalBot
}

// IntervalTop yields ⊤ = [-∞, ∞].
func IntervalTop() Interval {
	return intervalTop
}

// MakeInterval creates an interval with possibly infinite bounds. Empty
// intervals are normalized to ⊥.
func MakeInterval(low, high IntervalBound) Interval {
	if high.Lt(low) {
		return intervalBot
	}
	return Interval{low, high}
}

// FiniteInterval creates the interval [low, high].
func FiniteInterval(low, high int) Interval {
	return MakeInterval(FiniteBound(low), FiniteBound(high))
}

// Constant creates the singleton interval [c, c].
func Constant(c int) Interval {
	return FiniteInterval(c, c)
}

func (e Interval) Low() IntervalBound  { return e.low }
func (e Interval) High() IntervalBound { return e.high }

func (e Interval) String() string {
	if e.IsBot() {
		return "⊥"
	}
	return "[" + e.low.String() + ", " + e.high.String() + "]"
}

// IsBot checks that the interval is equal to ⊥ = [∞, -∞].
func (e Interval) IsBot() bool {
	return e.high.Lt(e.low)
}

// IsTop checks that the interval is equal to ⊤ = [-∞, ∞].
func (e Interval) IsTop() bool {
	return e == intervalTop
}

// IsConstant checks whether the interval is a singleton [c, c].
func (e Interval) IsConstant() (int, bool) {
	if l, ok := e.low.(FiniteBound); ok && e.low.Eq(e.high) {
		return int(l), true
	}
	return 0, false
}

// Height is the number of integers in the interval, or -1 if it is unbounded.
func (e Interval) Height() int {
	if e.IsBot() {
		return 0
	}
	l, lok := e.low.(FiniteBound)
	h, hok := e.high.(FiniteBound)
	if !(lok && hok) {
		return -1
	}
	return int(h-l) + 1
}

func (e1 Interval) Eq(e2 Interval) bool {
	if e1.IsBot() || e2.IsBot() {
		return e1.IsBot() && e2.IsBot()
	}
	return e1.low.Eq(e2.low) && e1.high.Eq(e2.high)
}

func (e1 Interval) Leq(e2 Interval) bool {
	switch {
	case e1.IsBot():
		return true
	case e2.IsBot():
		return false
	}
	return e2.low.Leq(e1.low) && e1.high.Leq(e2.high)
}

func (e1 Interval) Geq(e2 Interval) bool {
	return e2.Leq(e1)
}

// Join takes the lowest of the lower bounds, and the highest of the upper bounds.
func (e1 Interval) Join(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}
	return Interval{minBound(e1.low, e2.low), maxBound(e1.high, e2.high)}
}

// Meet intersects the intervals.
func (e1 Interval) Meet(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}
	return MakeInterval(maxBound(e1.low, e2.low), minBound(e1.high, e2.high))
}

// Widen extrapolates unstable bounds of e1 ∇ e2 to infinity.
func (e1 Interval) Widen(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}

	low, high := e1.low, e1.high
	if e2.low.Lt(low) {
		low = MinusInfinity{}
	}
	if high.Lt(e2.high) {
		high = PlusInfinity{}
	}
	return Interval{low, high}
}

// Plus computes [l1 + l2, h1 + h2].
func (e1 Interval) Plus(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}
	return Interval{e1.low.Plus(e2.low), e1.high.Plus(e2.high)}
}

// Neg computes [-h, -l].
func (e Interval) Neg() Interval {
	if e.IsBot() {
		return intervalBot
	}
	return Interval{e.high.Neg(), e.low.Neg()}
}

// Minus computes [l1 - h2, h1 - l2].
func (e1 Interval) Minus(e2 Interval) Interval {
	return e1.Plus(e2.Neg())
}

// Mult computes the smallest interval containing all pairwise products of
// the bounds.
func (e1 Interval) Mult(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}

	products := []IntervalBound{
		e1.low.Mult(e2.low),
		e1.low.Mult(e2.high),
		e1.high.Mult(e2.low),
		e1.high.Mult(e2.high),
	}
	low, high := products[0], products[0]
	for _, p := range products[1:] {
		low, high = minBound(low, p), maxBound(high, p)
	}
	return Interval{low, high}
}

var _ Domain[Interval] = Interval{}
