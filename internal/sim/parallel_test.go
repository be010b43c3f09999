package sim

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor_CoversRange(t *testing.T) {
	const n = 1000
	hits := make([]int32, n)

	ParallelFor(n, 16, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestParallelFor_SmallRunsSerial(t *testing.T) {
	calls := 0
	ParallelFor(5, 16, 4, func(start, end int) {
		calls++
		if start != 0 || end != 5 {
			t.Errorf("expected single chunk [0,5), got [%d,%d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected one call, got %d", calls)
	}
}

func TestParallelFor_ZeroN(t *testing.T) {
	var total int32
	ParallelFor(0, 16, 4, func(start, end int) {
		atomic.AddInt32(&total, int32(end-start))
	})
	if total != 0 {
		t.Errorf("expected no work, got %d", total)
	}
}

func TestFramePool(t *testing.T) {
	pool := NewFramePool(16)

	b1 := pool.Get()
	if len(b1) != 16 {
		t.Fatalf("pool returned wrong size: %d", len(b1))
	}

	b1[0] = 0xff
	pool.Put(b1)

	b2 := pool.Get()
	if b2[0] != 0 {
		t.Error("pool did not zero the buffer")
	}
}

func TestFramePool_GetAndCopy(t *testing.T) {
	pool := NewFramePool(4)
	src := []byte{1, 2, 3, 4}

	dst := pool.GetAndCopy(src)
	if dst[0] != 1 || dst[3] != 4 {
		t.Errorf("copy failed: got %v", dst)
	}

	dst[0] = 99
	if src[0] == 99 {
		t.Error("copy shares backing array with source")
	}
}
