package hashing

import (
	"sync"

	"github.com/lgbarn/fen-extract-go/internal/chess"
)

// ThreadSafeDuplicateDetector guards a DuplicateDetector with a
// read-write mutex so pool workers can share it.
type ThreadSafeDuplicateDetector struct {
	mu    sync.RWMutex
	inner *DuplicateDetector
}

var _ Checker = (*ThreadSafeDuplicateDetector)(nil)

// NewThreadSafeDuplicateDetector creates a thread-safe detector.
// A maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		inner: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether the position has been seen
// before and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(pos chess.Position) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inner.CheckAndAdd(pos)
}

// MarkSeen atomically records a position without counting it as a duplicate.
func (d *ThreadSafeDuplicateDetector) MarkSeen(pos chess.Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inner.MarkSeen(pos)
}

// DuplicateCount returns the number of duplicates detected so far.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.DuplicateCount()
}

// UniqueCount returns the number of recorded distinct positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.UniqueCount()
}

// LoadFromDetector copies the entries of an existing detector, for
// example one preloaded from a check file. Call before concurrent use.
func (d *ThreadSafeDuplicateDetector) LoadFromDetector(other *DuplicateDetector) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, positions := range other.hashTable {
		for _, pos := range positions {
			d.inner.MarkSeen(pos)
		}
	}
}

// IsFull reports whether the detector has reached its capacity limit.
// A detector with unlimited capacity is never full.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner.IsFull()
}
