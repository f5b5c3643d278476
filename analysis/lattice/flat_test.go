package lattice

import "testing"

func TestFlatJoin(t *testing.T) {
	var (
		fbot = FlatBot[int]()
		ftop = FlatTop[int]()
		one  = FlatConst(1)
		two  = FlatConst(2)
	)

	tests := []struct{ a, b, expected Flat[int] }{
		{fbot, fbot, fbot},
		{fbot, one, one},
		{one, fbot, one},
		{one, one, one},
		{one, two, ftop},
		{two, ftop, ftop},
		{ftop, fbot, ftop},
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

func TestFlatMeet(t *testing.T) {
	var (
		fbot = FlatBot[string]()
		ftop = FlatTop[string]()
		x    = FlatConst("x")
		y    = FlatConst("y")
	)

	tests := []struct{ a, b, expected Flat[string] }{
		{fbot, ftop, fbot},
		{ftop, ftop, ftop},
		{ftop, x, x},
		{x, x, x},
		{x, y, fbot},
		{y, fbot, fbot},
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

func TestFlatLeq(t *testing.T) {
	var (
		fbot = FlatBot[int]()
		ftop = FlatTop[int]()
		one  = FlatConst(1)
		two  = FlatConst(2)
	)

	tests := []struct {
		a, b     Flat[int]
		expected bool
	}{
		{fbot, one, true},
		{one, fbot, false},
		{one, one, true},
		{one, two, false},
		{two, ftop, true},
		{ftop, two, false},
		{fbot, ftop, true},
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

func TestFlatValue(t *testing.T) {
	if v, ok := FlatConst(7).Value(); !ok || v != 7 {
		t.Errorf("Expected 7 to be a constant, got %v, %v", v, ok)
	}
	if _, ok := FlatTop[int]().Value(); ok {
		t.Error("⊤ should not be a constant")
	}
	if !FlatConst(3).Is(3) || FlatConst(3).Is(4) || FlatBot[int]().Is(0) {
		t.Error("Is does not recognize constants")
	}
}
