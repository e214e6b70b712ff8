package memo

// Table is a memoization table mapping keys to previously computed values.
type Table[K, V any] interface {
	// Get returns the value stored for an equal key.
	// It never changes the number of entries.
	Get(key K) (V, bool)

	// Insert stores value for key, overwriting any previous value.
	Insert(key K, value V)

	// Len reports the number of entries currently held.
	Len() int
}

var _ Table[string, int] = (*Memoizer[string, int])(nil)

// Memoizer is an unbounded, map-backed Table for comparable keys.
// It grows for the lifetime of one top-level computation and never evicts.
type Memoizer[K comparable, V any] struct {
	table map[K]V
}

// New returns an empty Memoizer.
func New[K comparable, V any]() *Memoizer[K, V] {
	return &Memoizer[K, V]{table: make(map[K]V)}
}

// NewWithCapacity returns an empty Memoizer sized for n entries.
func NewWithCapacity[K comparable, V any](n int) *Memoizer[K, V] {
	return &Memoizer[K, V]{table: make(map[K]V, n)}
}

func (m *Memoizer[K, V]) Get(key K) (V, bool) {
	v, ok := m.table[key]
	return v, ok
}

func (m *Memoizer[K, V]) Insert(key K, value V) {
	m.table[key] = value
}

func (m *Memoizer[K, V]) Len() int {
	return len(m.table)
}

// Pair is a comparable two-part key, handy for memoizing functions of two
// arguments.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// PairOf builds a Pair.
func PairOf[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}
