// Package arraypool implements spec.md §3's ArrayPool: a bounded free-list
// of work arrays of a single element type and length, from which the
// planner requests up to ~3 temporaries per dilation/erosion call.
//
// The teacher pools temporary numeric slices with sync.Pool (see
// hwy/contrib/nn/qkvdense.go's tempPoolF32/tempPoolF64), but sync.Pool gives
// no control over capacity and the GC can evict entries between calls,
// which is fine for "maybe faster, maybe a fresh alloc" transformer
// scratch space but wrong here: §3's Ownership clause requires work buffers
// to be released deterministically on every exit path within one dilation
// call, and §9's design notes ask for "a small fixed-capacity ring of owned
// buffers ... returned by Drop of a guard". Go has no Drop, so Pool uses a
// buffered channel as the ring and a Guard value as the closest equivalent:
// its Release method is idempotent and safe to call from a defer.
package arraypool

// Pool is a bounded ring of reusable []T buffers, all of the same length.
type Pool[T any] struct {
	length int
	free   chan []T
}

// New creates a Pool holding up to capacity buffers of the given length.
// Buffers are allocated lazily on first Get, not eagerly at construction.
func New[T any](length, capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{length: length, free: make(chan []T, capacity)}
}

// Guard wraps a buffer checked out of a Pool; Release returns it to the
// pool (or drops it, if the pool's ring is already full) and is safe to
// call more than once.
type Guard[T any] struct {
	pool     *Pool[T]
	buf      []T
	released bool
}

// Buf returns the checked-out buffer.
func (g *Guard[T]) Buf() []T { return g.buf }

// Release returns the buffer to its pool. Safe to call multiple times, and
// safe to call on a zero Guard.
func (g *Guard[T]) Release() {
	if g == nil || g.released || g.pool == nil {
		return
	}
	g.released = true
	select {
	case g.pool.free <- g.buf:
	default:
		// Ring is full; let the buffer be garbage collected.
	}
}

// Get checks out a buffer of the pool's configured length, reusing a
// released one if the ring has one available, allocating fresh otherwise.
func (p *Pool[T]) Get() *Guard[T] {
	select {
	case buf := <-p.free:
		return &Guard[T]{pool: p, buf: buf}
	default:
		return &Guard[T]{pool: p, buf: make([]T, p.length)}
	}
}

// Length returns the buffer length this pool was configured for.
func (p *Pool[T]) Length() int { return p.length }
