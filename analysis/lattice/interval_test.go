package lattice

import (
	"math"
	"testing"
)

type (
	b = FiniteBound
	P = PlusInfinity
	M = MinusInfinity
)

var itv = MakeInterval

func TestIntervalJoin(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalBot(), IntervalBot(), IntervalBot()},
		{IntervalBot(), IntervalTop(), IntervalTop()},
		{IntervalTop(), IntervalBot(), IntervalTop()},
		{IntervalTop(), IntervalTop(), IntervalTop()},
		{IntervalBot(), itv(b(0), b(0)), itv(b(0), b(0))},
		{itv(b(0), b(0)), IntervalBot(), itv(b(0), b(0))},
		{itv(b(0), b(0)), itv(b(1), b(1)), itv(b(0), b(1))},
		{itv(b(1), b(1)), itv(b(0), b(0)), itv(b(0), b(1))},
		{itv(b(1), b(2)), itv(b(3), b(4)), itv(b(1), b(4))},
		{itv(b(-1), b(0)), itv(b(0), b(1)), itv(b(-1), b(1))},
		{itv(b(0), b(1)), itv(b(-1), b(0)), itv(b(-1), b(1))},
		{itv(b(0), b(1024)), itv(b(0), P{}), itv(b(0), P{})},
		{itv(b(0), P{}), itv(b(0), b(1024)), itv(b(0), P{})},
		{itv(b(-1024), b(0)), itv(b(0), P{}), itv(b(-1024), P{})},
		{itv(M{}, b(0)), itv(b(-1024), b(0)), itv(M{}, b(0))},
		{itv(b(-1024), b(0)), itv(M{}, b(0)), itv(M{}, b(0))},
		{itv(M{}, b(-1024)), itv(b(1024), P{}), IntervalTop()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalMeet(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalBot(), IntervalTop(), IntervalBot()},
		{IntervalTop(), IntervalTop(), IntervalTop()},
		{IntervalTop(), itv(b(0), b(3)), itv(b(0), b(3))},
		{itv(b(0), b(3)), itv(b(2), b(5)), itv(b(2), b(3))},
		{itv(b(0), b(1)), itv(b(2), b(5)), IntervalBot()},
		{itv(M{}, b(0)), itv(b(0), P{}), itv(b(0), b(0))},
	}

	for _, test := range tests {
		res := test.a.Meet(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊓ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalLeq(t *testing.T) {
	tests := []struct {
		a, b     Interval
		expected bool
	}{
		{IntervalBot(), IntervalBot(), true},
		{IntervalBot(), itv(b(0), b(0)), true},
		{itv(b(0), b(0)), IntervalBot(), false},
		{itv(b(1), b(2)), itv(b(0), b(3)), true},
		{itv(b(0), b(3)), itv(b(1), b(2)), false},
		{itv(b(0), b(3)), itv(b(1), P{}), false},
		{itv(b(1), b(3)), itv(b(1), P{}), true},
		{itv(M{}, b(3)), IntervalTop(), true},
		{IntervalTop(), itv(M{}, b(3)), false},
	}

	for _, test := range tests {
		res := test.a.Leq(test.b)
		if res != test.expected {
			t.Errorf("%s ⊑ %s = %v, expected %v\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊑ %s = %v\n", test.a, test.b, res)
		}
	}
}

func TestIntervalWiden(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalBot(), itv(b(0), b(0)), itv(b(0), b(0))},
		{itv(b(0), b(0)), IntervalBot(), itv(b(0), b(0))},
		{itv(b(0), b(0)), itv(b(0), b(1)), itv(b(0), P{})},
		{itv(b(0), b(1)), itv(b(-1), b(1)), itv(M{}, b(1))},
		{itv(b(0), b(1)), itv(b(-1), b(2)), IntervalTop()},
		{itv(b(0), b(5)), itv(b(1), b(3)), itv(b(0), b(5))},
	}

	for _, test := range tests {
		res := test.a.Widen(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ∇ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ∇ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestIntervalArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		res      Interval
		expected Interval
	}{
		{"[1, 2] + [3, 4]", itv(b(1), b(2)).Plus(itv(b(3), b(4))), itv(b(4), b(6))},
		{"[1, 2] + ⊥", itv(b(1), b(2)).Plus(IntervalBot()), IntervalBot()},
		{"[0, ∞] + [1, 1]", itv(b(0), P{}).Plus(Constant(1)), itv(b(1), P{})},
		{"[1, 2] - [3, 4]", itv(b(1), b(2)).Minus(itv(b(3), b(4))), itv(b(-3), b(-1))},
		{"-[1, ∞]", itv(b(1), P{}).Neg(), itv(M{}, b(-1))},
		{"[-2, 3] * [4, 5]", itv(b(-2), b(3)).Mult(itv(b(4), b(5))), itv(b(-10), b(15))},
		{"⊤ * [0, 0]", IntervalTop().Mult(Constant(0)), Constant(0)},
		{"[1, ∞] * [-1, -1]", itv(b(1), P{}).Mult(Constant(-1)), itv(M{}, b(-1))},
		{"[2^60, 2^62] * [4, 4]", itv(b(1<<60), b(1<<62)).Mult(Constant(4)), itv(b(1<<62), P{})},
		{"[2^60, 2^62] * [-4, -4]", itv(b(1<<60), b(1<<62)).Mult(Constant(-4)), itv(M{}, b(-(1 << 62)))},
		{"[MaxInt - 1, MaxInt] + [1, 1]", itv(b(math.MaxInt-1), b(math.MaxInt)).Plus(Constant(1)), itv(b(math.MaxInt), P{})},
		{"[MinInt, 0] - [0, 1]", itv(b(math.MinInt), b(0)).Minus(FiniteInterval(0, 1)), itv(M{}, b(0))},
		{"-[MinInt, 0]", itv(b(math.MinInt), b(0)).Neg(), itv(b(0), P{})},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("%s = %s, expected %s\n", test.name, test.res, test.expected)
		}
	}
}

func TestFiniteBoundSaturation(t *testing.T) {
	tests := []struct {
		name     string
		res      IntervalBound
		expected IntervalBound
	}{
		{"MaxInt + 1", b(math.MaxInt).Plus(b(1)), P{}},
		{"MinInt + -1", b(math.MinInt).Plus(b(-1)), M{}},
		{"MaxInt + -1", b(math.MaxInt).Plus(b(-1)), b(math.MaxInt - 1)},
		{"-MinInt", b(math.MinInt).Neg(), P{}},
		{"MinInt * -1", b(math.MinInt).Mult(b(-1)), P{}},
		{"-1 * MinInt", b(-1).Mult(b(math.MinInt)), P{}},
		{"2^62 * -4", b(1 << 62).Mult(b(-4)), M{}},
		{"2^31 * 2^31", b(1 << 31).Mult(b(1 << 31)), b(1 << 62)},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("%s = %s, expected %s\n", test.name, test.res, test.expected)
		}
	}
}

func TestIntervalNormalization(t *testing.T) {
	if e := FiniteInterval(3, 1); !e.IsBot() {
		t.Errorf("[3, 1] should be ⊥, got %s", e)
	}
	if c, ok := Constant(4).IsConstant(); !ok || c != 4 {
		t.Errorf("[4, 4] should be the constant 4")
	}
	if h := FiniteInterval(-2, 2).Height(); h != 5 {
		t.Errorf("Height of [-2, 2] = %d, expected 5", h)
	}
	if h := itv(b(0), P{}).Height(); h != -1 {
		t.Errorf("Height of [0, ∞] = %d, expected -1", h)
	}
}
