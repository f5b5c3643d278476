package lattice

// TwoElement is a member of the two element lattice:
//
//	⊤
//	|
//	⊥
type TwoElement bool

const (
	twoElemBot TwoElement = false
	twoElemTop TwoElement = true
)

// TwoElementBot yields ⊥ of the two-element lattice.
func TwoElementBot() TwoElement {
	return twoElemBot
}

// TwoElementTop yields ⊤ of the two-element lattice.
func TwoElementTop() TwoElement {
	return twoElemTop
}

func (b TwoElement) String() string {
	if b {
		return colorize.Element("⊤")
	}
	return colorize.Element("⊥")
}

func (b TwoElement) IsTop() bool {
	return bool(b)
}

func (b TwoElement) IsBot() bool {
	return !bool(b)
}

func (e1 TwoElement) Eq(e2 TwoElement) bool {
	return e1 == e2
}

func (e1 TwoElement) Leq(e2 TwoElement) bool {
	return bool(!e1 || e2)
}

func (e1 TwoElement) Geq(e2 TwoElement) bool {
	return bool(e1 || !e2)
}

func (e1 TwoElement) Join(e2 TwoElement) TwoElement {
	return e1 || e2
}

func (e1 TwoElement) Meet(e2 TwoElement) TwoElement {
	return e1 && e2
}
