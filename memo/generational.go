package memo

// Generational is a bounded Table made of two generations.
//
// New entries go to the head generation. When the head is full it becomes
// the previous generation, the old previous generation is dropped, and a
// fresh head is started. Lookups consult the head first and then the
// previous generation. At most 2*maxSize entries are held at any time.
//
// Dropped entries only cost recomputation: a memoized search over a
// Generational table returns the same answers as over an unbounded one.
type Generational[K comparable, V any] struct {
	gens    [2]map[K]V
	headIdx int
	maxSize int
}

// NewGenerational returns an empty Generational table whose generations hold
// maxSize entries each. It panics if maxSize is not positive.
func NewGenerational[K comparable, V any](maxSize int) *Generational[K, V] {
	if maxSize <= 0 {
		panic("maxSize should be greater than 0")
	}
	return &Generational[K, V]{
		gens:    [2]map[K]V{make(map[K]V), make(map[K]V)},
		maxSize: maxSize,
	}
}

func (g *Generational[K, V]) Get(key K) (V, bool) {
	if v, ok := g.gens[g.headIdx][key]; ok {
		return v, true
	}
	v, ok := g.gens[1-g.headIdx][key]
	return v, ok
}

func (g *Generational[K, V]) Insert(key K, value V) {
	head := g.gens[g.headIdx]
	if _, ok := head[key]; !ok && len(head) >= g.maxSize {
		g.headIdx = 1 - g.headIdx
		head = make(map[K]V, g.maxSize)
		g.gens[g.headIdx] = head
	}
	head[key] = value
	// keep every key in exactly one generation
	delete(g.gens[1-g.headIdx], key)
}

func (g *Generational[K, V]) Len() int {
	return len(g.gens[0]) + len(g.gens[1])
}
