package ringlog

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// maxCapacity bounds the ring at 2^30 slots.
const maxCapacity = 1 << 30

// Buffer owns the fixed slot array, the shared head counter, and the
// configuration every Producer/Consumer/sequencer handle was built
// against. Go's garbage collector gives every holder of a *Buffer[T]
// shared ownership for free, so Producer, Consumer, and the sequencer
// goroutine simply close over the pointer.
type Buffer[T any] struct {
	slots []Slot[T]
	mask  uint64
	head  atomic.Uint64

	cfg     *bufferConfig
	nextPID atomic.Uint32

	stats sequencerStats
}

// Builder constructs a Buffer with validated configuration. Obtain one
// from NewBuilder, which sets the capacity to 1024; a zero-value Builder
// has capacity 0, which Build rejects.
type Builder[T any] struct {
	capacity uint64
	opts     []Option
}

// NewBuilder returns a Builder[T]. Spelled as a function rather than
// Buffer[T].Builder() because Go cannot call a generic method without
// first naming the type parameter at the call site either way; this
// keeps call sites as ringlog.NewBuilder[uint64]().Capacity(256).Build().
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{capacity: 1024}
}

// Capacity sets the number of slots. Must be a non-zero power of two and
// <= 2^30; validated at Build time so the zero value stays chainable.
func (b *Builder[T]) Capacity(n uint64) *Builder[T] {
	b.capacity = n
	return b
}

// With appends Options (logger, metrics sink, spin budget) applied at
// Build time.
func (b *Builder[T]) With(opts ...Option) *Builder[T] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build validates the configuration and allocates the slot array.
func (b *Builder[T]) Build() (*Buffer[T], error) {
	if b.capacity == 0 {
		return nil, newInvalidCapacityError(ErrCapacityZero)
	}
	if b.capacity&(b.capacity-1) != 0 {
		return nil, newInvalidCapacityError(ErrCapacityNotPowerOfTwo)
	}
	if b.capacity > maxCapacity {
		return nil, newTooLargeError()
	}

	cfg := defaultBufferConfig()
	cfg.capacity = b.capacity
	for _, opt := range b.opts {
		opt.apply(cfg)
	}

	buf := &Buffer[T]{
		slots: make([]Slot[T], b.capacity),
		mask:  b.capacity - 1,
		cfg:   cfg,
	}
	cfg.logger.Debug("ringlog: buffer built", zap.Uint64("capacity", b.capacity))
	return buf, nil
}

// Capacity returns the number of slots in the ring.
func (buf *Buffer[T]) Capacity() uint64 { return buf.mask + 1 }

// Producer returns a new producer handle bound to this buffer. Producer
// ids are allocated from a 32-bit atomic counter truncated to uint8, so
// the 257th call wraps back to id 0.
func (buf *Buffer[T]) Producer() *Producer[T] {
	n := buf.nextPID.Add(1)
	id := uint8(n - 1)
	if id == 0 && n != 1 {
		buf.cfg.logger.Warn("ringlog: producer id wrapped around 256; attribution is no longer unique")
	}
	return &Producer[T]{buffer: buf, id: id}
}

// Consumer returns a new, independent consumer handle starting at
// cursor 0. There is no registry: any number of consumers may read the
// same sequenced slots concurrently and non-destructively.
func (buf *Buffer[T]) Consumer() *Consumer[T] {
	return &Consumer[T]{buffer: buf}
}

// Start spawns the dedicated sequencer goroutine and returns a Handle
// for stopping and joining it.
func (buf *Buffer[T]) Start() *Handle {
	return startSequencer(buf)
}

// Stats returns a point-in-time snapshot of the sequencer's progress.
func (buf *Buffer[T]) Stats() Stats {
	return buf.stats.snapshot()
}
