// Package blockpool provides a fixed-capacity object pool that blocks
// when taking an item out.
//
// A Pool is built once from an initial set of items and never grows or
// shrinks. Take removes an item, suspending the caller until one is
// available, and returns a Lease that puts the item back when released.
// Items are never discarded or recreated; the same values circulate
// between the pool and its leases for the lifetime of the pool.
package blockpool

import "context"

// Pool is a container for objects that can be taken out. It is safe for
// concurrent use by multiple goroutines.
//
// The capacity is fixed at construction. At any instant the number of
// available items plus the number of outstanding leases equals the
// capacity.
type Pool[T any] struct {
	items chan T
}

// New constructs a Pool holding the given items. The capacity of the
// pool is the length of the slice. New never fails; an empty slice
// produces a degenerate pool on which every Take blocks forever, which
// is the caller's responsibility to avoid.
func New[T any](items []T) *Pool[T] {
	ch := make(chan T, len(items))
	for _, item := range items {
		ch <- item
	}

	return &Pool[T]{items: ch}
}

// Take removes an item from the pool, blocking until one is available.
// There is no ordering guarantee among available items, and no FIFO
// guarantee among blocked callers; when an item is returned exactly one
// blocked caller is woken.
//
// The item goes back into the pool when the returned lease is released.
// There is no resetting of items between uses; callers reset state on
// their own if they need to.
func (p *Pool[T]) Take() *Lease[T] {
	return newLease(p, <-p.items)
}

// TryTake removes an item from the pool without blocking. It reports
// false if no item is currently available.
func (p *Pool[T]) TryTake() (*Lease[T], bool) {
	select {
	case item := <-p.items:
		return newLease(p, item), true
	default:
		return nil, false
	}
}

// TakeContext is like Take but gives up when ctx is done, returning
// ctx.Err(). On success the returned error is nil.
func (p *Pool[T]) TakeContext(ctx context.Context) (*Lease[T], error) {
	select {
	case item := <-p.items:
		return newLease(p, item), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// With takes an item, passes it to fn, and returns it to the pool when
// fn finishes, on every exit path including a panic.
func (p *Pool[T]) With(fn func(item *T)) {
	lease := p.Take()
	defer lease.Release()

	fn(lease.Value())
}

// Len returns the number of items currently available to Take.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap returns the fixed capacity of the pool.
func (p *Pool[T]) Cap() int {
	return cap(p.items)
}

// put places an item back and wakes one blocked taker, if any. Every
// put corresponds to a previously issued lease, so there is always a
// free slot and the send never blocks.
func (p *Pool[T]) put(item T) {
	p.items <- item
}
