package blockpool

import "sync/atomic"

// Lease holds an object taken from a Pool. Exactly one live lease
// exists per checked-out item, giving the holder exclusive access until
// the lease is released. A Lease must not be copied.
type Lease[T any] struct {
	item     T
	pool     *Pool[T]
	released atomic.Bool
}

func newLease[T any](p *Pool[T], item T) *Lease[T] {
	return &Lease[T]{item: item, pool: p}
}

// Value returns a pointer to the held item for reading and writing. It
// panics if the lease has been released.
func (l *Lease[T]) Value() *T {
	if l.released.Load() {
		panic("blockpool: lease used after release")
	}

	return &l.item
}

// Release returns the item to the pool and wakes one blocked taker, if
// any. The first call releases; further calls are no-ops.
func (l *Lease[T]) Release() {
	if !l.released.CompareAndSwap(false, true) {
		return
	}

	l.pool.put(l.item)

	var zero T
	l.item = zero
}
