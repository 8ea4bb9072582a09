// Package worker provides a worker pool for parallel position processing.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/scan"
)

// WorkItem represents one input line to be processed.
type WorkItem struct {
	Item  scan.Item
	Index int // Original index for tracking
}

// ProcessResult represents the result of processing one line.
type ProcessResult struct {
	Index     int
	Item      scan.Item
	Pos       chess.Position // Decoded position (zero value when Err is set)
	Matched   bool           // Whether the position passed the filters
	Duplicate bool           // Whether the position was seen before
	Err       error
}

// ProcessFunc decodes and evaluates one submitted line.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans submitted lines out to a fixed set of worker goroutines
// and collects their results on a single channel.
type Pool struct {
	workers int
	buffer  int
	lines   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPoolWithOptions creates a pool using functional options.
// process is required; the defaults are 1 worker and a buffer of 10.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Channels are sized by the options, so create them last.
	p.lines = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// run consumes lines until the work channel is closed.
func (p *Pool) run() {
	defer p.wg.Done()

	for item := range p.lines {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.results <- p.process(item)
	}
}

// Submit queues a line for processing. It blocks while the work
// channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.lines <- item
}

// TrySubmit queues a line without blocking. It reports false when the
// work channel is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopped) != 0 {
		return false
	}
	select {
	case p.lines <- item:
		return true
	default:
		return false
	}
}

// Stop tells workers to stop processing new lines. Lines already
// queued are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

// Close closes the work channel, waits for the workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.lines)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed results arrive on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}
