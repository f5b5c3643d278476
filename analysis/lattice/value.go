package lattice

// Value describes how the values stored in a FlatMap are constructed and
// compared. Keys that are absent from a FlatMap are implicitly bound to
// Default().
type Value[V any] interface {
	Default() V
	IsDefault(V) bool
	Equals(a, b V) bool
}

// Ordering is the optional capability needed by FlatMap.Leq. The default
// value must be either ⊤ or ⊥ of the value lattice for the comparison to be
// defined.
type Ordering[V any] interface {
	Value[V]
	Leq(a, b V) bool
	DefaultIsTop() bool
	DefaultIsBot() bool
}

// Domain is implemented by lattice elements that can be stored in a FlatMap
// through a DomainValue policy.
type Domain[E any] interface {
	Leq(E) bool
	Eq(E) bool
	Join(E) E
	Meet(E) E
	IsTop() bool
	IsBot() bool
	String() string
}

// DomainValue is the value policy of a lattice domain with a designated
// default element.
type DomainValue[E Domain[E]] struct {
	def E
}

// TopDefault binds absent keys to ⊤. Absence means "no constraint".
func TopDefault[E Domain[E]](top E) DomainValue[E] {
	return DomainValue[E]{top}
}

// BotDefault binds absent keys to ⊥. Absence means "no information".
func BotDefault[E Domain[E]](bot E) DomainValue[E] {
	return DomainValue[E]{bot}
}

// WithDefault binds absent keys to an arbitrary element. Maps using such a
// policy support every operation except ordering comparisons, unless the
// element happens to be ⊤ or ⊥.
func WithDefault[E Domain[E]](def E) DomainValue[E] {
	return DomainValue[E]{def}
}

func (p DomainValue[E]) Default() E {
	return p.def
}

func (p DomainValue[E]) IsDefault(e E) bool {
	return p.def.Eq(e)
}

func (DomainValue[E]) Equals(a, b E) bool {
	return a.Eq(b)
}

func (DomainValue[E]) Leq(a, b E) bool {
	return a.Leq(b)
}

func (p DomainValue[E]) DefaultIsTop() bool {
	return p.def.IsTop()
}

func (p DomainValue[E]) DefaultIsBot() bool {
	return p.def.IsBot()
}

// SimpleValue is an equality-only policy for plain comparable values, e.g.
// counters where the zero value is the default. It does not order values,
// so FlatMap.Leq is undefined for maps using it.
type SimpleValue[V comparable] struct {
	def V
}

// Simple creates an equality-only policy with the given default value.
func Simple[V comparable](def V) SimpleValue[V] {
	return SimpleValue[V]{def}
}

func (p SimpleValue[V]) Default() V {
	return p.def
}

func (p SimpleValue[V]) IsDefault(v V) bool {
	return v == p.def
}

func (SimpleValue[V]) Equals(a, b V) bool {
	return a == b
}

// JoinOf is a combining function computing a ⊔ b. Use with UnionWith to
// compute the pointwise join of two maps whose default is ⊥.
func JoinOf[E Domain[E]](a, b E) E {
	return a.Join(b)
}

// MeetOf is a combining function computing a ⊓ b. Use with IntersectionWith
// to compute the pointwise meet of two maps whose default is ⊥.
func MeetOf[E Domain[E]](a, b E) E {
	return a.Meet(b)
}

var (
	_ Ordering[TwoElement] = DomainValue[TwoElement]{}
	_ Value[int]           = SimpleValue[int]{}
)
