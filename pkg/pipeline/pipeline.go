// Package pipeline provides a small bounded queue for handing frames
// from the capture loop to a consumer without blocking either side.
package pipeline

import "sync/atomic"

// Pipeline is a bounded single-producer single-consumer queue with
// lossy backpressure: a push into a full queue drops the new item so
// the producer never stalls, and a pop from an empty queue returns
// immediately. Freshness over completeness.
type Pipeline[T any] struct {
	ch      chan T
	pushed  atomic.Uint64
	dropped atomic.Uint64
}

// New creates a pipeline with the given capacity (minimum 1)
func New[T any](capacity int) *Pipeline[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pipeline[T]{ch: make(chan T, capacity)}
}

// TryPush offers v to the consumer. Returns false when the queue was
// full and v was dropped.
func (p *Pipeline[T]) TryPush(v T) bool {
	select {
	case p.ch <- v:
		p.pushed.Add(1)
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// TryPop returns the oldest queued item, or ok=false when empty
func (p *Pipeline[T]) TryPop() (T, bool) {
	select {
	case v := <-p.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the number of queued items
func (p *Pipeline[T]) Len() int {
	return len(p.ch)
}

// Stats reports how many items were accepted and dropped since creation
func (p *Pipeline[T]) Stats() (pushed, dropped uint64) {
	return p.pushed.Load(), p.dropped.Load()
}
