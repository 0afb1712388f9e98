package ringlog

import (
	"context"
	"time"
)

// Consumer owns a private cursor into sequence space. Consumers are
// independent: there is no registry, and any number of them may read
// the same sequenced slots concurrently without coordination.
type Consumer[T any] struct {
	buffer *Buffer[T]
	cursor uint64
}

// Cursor returns the consumer's current position in sequence space.
func (c *Consumer[T]) Cursor() uint64 { return c.cursor }

// TryNext returns the next event if the consumer's cursor has been
// sequenced, or ok=false if it has not (yet). Non-blocking: callers that
// want to wait should poll with their own backoff, or use Events.
func (c *Consumer[T]) TryNext() (event Event[T], ok bool) {
	idx := c.cursor & c.buffer.mask
	slot := &c.buffer.slots[idx]

	if slot.loadState() != stateSequenced {
		return Event[T]{}, false
	}

	// Would only ever trip if a slot were recycled out from under this
	// cursor; this buffer never recycles, so the check is unreachable in
	// practice but cheap insurance if that ever changes.
	seq := slot.sequence.Load()
	if seq != c.cursor {
		return Event[T]{}, false
	}

	event = Event[T]{
		Sequence:   seq,
		Timestamp:  slot.timestamp,
		ProducerID: slot.producerID,
		Payload:    slot.payload,
	}

	if next := c.buffer.stats.nextSequence.Load(); next > c.cursor+1 {
		c.buffer.cfg.metrics.ConsumerLag(next - c.cursor - 1)
	} else {
		c.buffer.cfg.metrics.ConsumerLag(0)
	}

	c.cursor++
	return event, true
}

// Events returns a range-over-func iterator that yields sequenced events
// in order, retrying TryNext with an exponential backoff (capped at
// 10ms) while none are available. It stops once ctx is done
// or the consumer loop body returns false.
func (c *Consumer[T]) Events(ctx context.Context) func(yield func(Event[T]) bool) {
	const (
		minBackoff = time.Microsecond
		maxBackoff = 10 * time.Millisecond
	)
	return func(yield func(Event[T]) bool) {
		backoff := minBackoff
		for {
			event, ok := c.TryNext()
			if ok {
				backoff = minBackoff
				if !yield(event) {
					return
				}
				continue
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < maxBackoff {
				backoff *= 2
				if backoff > maxBackoff {
					backoff = maxBackoff
				}
			}
		}
	}
}
