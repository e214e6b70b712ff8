package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/on-the-ground/memo_ive_go/shared/fanout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	total, err := fanout.Sum(context.Background(), 100, 4, func(_ context.Context, i int) (uint64, error) {
		return uint64(i), nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4950), total)
}

func TestSum_Empty(t *testing.T) {
	total, err := fanout.Sum(context.Background(), 0, 1, func(context.Context, int) (uint64, error) {
		t.Fatal("fn must not run")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSum_RespectsWorkerLimit(t *testing.T) {
	var running, peak atomic.Int32
	_, err := fanout.Sum(context.Background(), 50, 3, func(context.Context, int) (uint64, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
		return 1, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestSum_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	total, err := fanout.Sum(context.Background(), 10, 1, func(_ context.Context, i int) (uint64, error) {
		if i == 3 {
			return 0, boom
		}
		return 1, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, total)
}
