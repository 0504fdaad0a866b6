package worker

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

// echoProcessFunc returns a process function that copies the item.
func echoProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func paths(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("board-%02d.board", i)
	}
	return out
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start(context.Background())

	const numItems = 10
	go func() {
		for i, p := range paths(numItems) {
			pool.Submit(WorkItem{Path: p, Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolRunOrder tests that Run restores input order whatever the
// completion order.
func TestPoolRunOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Path: item.Path, Index: item.Index}
	}

	input := paths(20)
	results := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(3)).Run(context.Background(), input)

	if len(results) != len(input) {
		t.Fatalf("received %d results; want %d", len(results), len(input))
	}
	for i, r := range results {
		if r.Index != i || r.Path != input[i] {
			t.Errorf("results[%d] = {%d %s}; want {%d %s}", i, r.Index, r.Path, i, input[i])
		}
	}
}

// TestPoolRunEmpty tests Run with nothing to do.
func TestPoolRunEmpty(t *testing.T) {
	if results := NewPool(echoProcessFunc()).Run(context.Background(), nil); len(results) != 0 {
		t.Errorf("Run(nil) = %v; want empty", results)
	}
}

// TestPoolRunCancelled tests that a cancelled run still answers every path.
func TestPoolRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	results := NewPool(countingProcessFunc(&processed), WithWorkers(2)).Run(ctx, paths(6))

	if len(results) != 6 {
		t.Fatalf("results = %d; want 6", len(results))
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v; want context.Canceled", i, r.Err)
		}
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d; want 0 after cancellation", got)
	}
}

// TestPoolSingleWorker tests pool with single worker and a tiny buffer.
func TestPoolSingleWorker(t *testing.T) {
	results := NewPool(echoProcessFunc(), WithBufferSize(1)).Run(context.Background(), paths(5))
	if len(results) != 5 {
		t.Errorf("results = %d; want 5", len(results))
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50)).Run(context.Background(), paths(100))

	if got := atomic.LoadInt32(&counter); got != 100 {
		t.Errorf("processed = %d; want 100", got)
	}
}

// TestNewPool tests the functional options.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(echoProcessFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
