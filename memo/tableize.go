package memo

import "fmt"

// Tableize1 memoizes a pure function of one argument in table.
// A nil table gets a fresh Memoizer.
//
// pureFn must be referentially transparent: the same input always yields the
// same output and nothing else is observed.
func Tableize1[I comparable, O any](pureFn func(I) O, table Table[I, O]) func(I) O {
	if table == nil {
		table = New[I, O]()
	}
	return func(i I) O {
		if v, ok := table.Get(i); ok {
			return v
		}
		v := pureFn(i)
		table.Insert(i, v)
		return v
	}
}

// Tableize2 memoizes a pure function of two arguments in table, keyed by
// the Pair of its arguments.
func Tableize2[I1, I2 comparable, O any](
	pureFn func(I1, I2) O,
	table Table[Pair[I1, I2], O],
) func(I1, I2) O {
	tableized := Tableize1(func(p Pair[I1, I2]) O {
		return pureFn(p.First, p.Second)
	}, table)
	return func(i1 I1, i2 I2) O {
		return tableized(PairOf(i1, i2))
	}
}

// TableizeStringer memoizes a pure function whose argument is not
// comparable but has a faithful String form. Arguments with equal String()
// share one entry.
func TableizeStringer[I fmt.Stringer, O any](pureFn func(I) O, table Table[string, O]) func(I) O {
	if table == nil {
		table = New[string, O]()
	}
	return func(i I) O {
		key := i.String()
		if v, ok := table.Get(key); ok {
			return v
		}
		v := pureFn(i)
		table.Insert(key, v)
		return v
	}
}
