// Package worker provides a worker pool for analyzing board files in
// parallel.
package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one board file to analyze.
type WorkItem struct {
	Path  string
	Index int // Position in the input, used to restore order
}

// ProcessResult is the analysis of one board file.
type ProcessResult struct {
	Index      int
	Path       string
	Board      chess.Board
	Status     engine.GameStatus
	InCheck    bool
	Checkers   int
	LegalMoves []chess.Move
	Err        error
}

// ProcessFunc analyzes one work item. It runs on a worker goroutine and
// must not touch state shared with other items.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over work items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool for processFunc. Default: 1 worker, buffer size
// of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is done, items still
// queued are answered with ctx.Err() instead of being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for item := range p.workChan {
		if err := ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Index: item.Index, Path: item.Path, Err: err}
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item. It blocks while the work buffer is full, so
// results must be drained concurrently.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel. Results arrive in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, processes every path and returns one result per
// path in the order of paths, even when ctx is cancelled part way. The
// pool cannot be reused afterwards.
func (p *Pool) Run(ctx context.Context, paths []string) []ProcessResult {
	p.Start(ctx)
	go func() {
		for i, path := range paths {
			p.Submit(WorkItem{Path: path, Index: i})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(paths))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
