package memo_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/stretchr/testify/assert"
)

func TestTableize1(t *testing.T) {
	count := 0
	fn := memo.Tableize1(func(i int) int {
		count++
		return i * 2
	}, nil)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableize2(t *testing.T) {
	count := 0
	table := memo.New[memo.Pair[int, int], int]()
	fn := memo.Tableize2(func(a, b int) int {
		count++
		return a + b
	}, table)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(3, 2))
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, table.Len())
}

func TestTableize_RecursiveFibonacci(t *testing.T) {
	calls := 0
	var fib func(uint64) uint64
	fib = memo.Tableize1(func(n uint64) uint64 {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, memo.NewGenerational[uint64, uint64](16))

	assert.Equal(t, uint64(12586269025), fib(50))
	assert.Equal(t, 51, calls)
}

type nonComparable struct {
	Field []int
}

func (n nonComparable) String() string {
	return fmt.Sprintf("nonComparable%v", n.Field)
}

func TestTableizeStringer(t *testing.T) {
	count := 0
	fn := memo.TableizeStringer(func(n nonComparable) int {
		count++
		return len(n.Field)
	}, nil)

	val := fn(nonComparable{Field: []int{1, 2, 3}})
	val2 := fn(nonComparable{Field: []int{1, 2, 3}})

	assert.Equal(t, 3, val)
	assert.Equal(t, 3, val2)
	assert.Equal(t, 1, count)
}
