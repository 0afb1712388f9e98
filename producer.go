package ringlog

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rishav/ringlog/internal/clock"
)

// Producer claims a slot via CAS on its state word, writes the payload
// under exclusive ownership, and publishes with release semantics. A
// Producer is a lightweight handle: it holds a shared reference to the
// buffer and owns no slots of its own.
type Producer[T any] struct {
	buffer *Buffer[T]
	id     uint8

	labelOnce sync.Once
	label     string
}

// ID returns the producer id stamped on every event this producer
// publishes. This is the fixed-width wire-format uint8, distinct from
// Label.
func (p *Producer[T]) ID() uint8 { return p.id }

// Label returns a human-legible identifier for this producer handle,
// generated lazily on first use. It exists for operator-facing logging
// and dashboards; it is never stamped onto a Slot or an Event, since the
// wire format is fixed at a single uint8.
func (p *Producer[T]) Label() string {
	p.labelOnce.Do(func() {
		p.label = uuid.New().String()
	})
	return p.label
}

// PushBlocking claims a slot and publishes value, spinning indefinitely
// until a Free slot becomes available. It never returns BufferFull and
// never drops an event.
func (p *Producer[T]) PushBlocking(value T) {
	slot := p.claim(context.Background())
	p.write(slot, value)
}

// Push claims a slot and publishes value, honoring ctx cancellation
// while spinning for a Free slot. A caller that wants a bounded wait
// passes a context with a deadline or that it cancels itself; Push
// returns ErrShutdown wrapped in a *PushError rather than spinning
// forever.
func (p *Producer[T]) Push(ctx context.Context, value T) error {
	slot, err := p.claimCtx(ctx)
	if err != nil {
		return err
	}
	p.write(slot, value)
	return nil
}

func (p *Producer[T]) write(slot *Slot[T], value T) {
	// SAFETY (in the Go sense: no data race, not memory safety): the
	// Claimed state is owned exclusively by this goroutine until the
	// Release store below, so these non-atomic writes are race-free.
	slot.payload = value
	slot.timestamp = clock.Now()
	slot.producerID = p.id

	slot.storeState(statePublished)
}

// claim is the unbounded-spin variant used by PushBlocking.
func (p *Producer[T]) claim(ctx context.Context) *Slot[T] {
	slot, _ := p.spinClaim(ctx, false)
	return slot
}

// claimCtx is the context-aware variant used by Push.
func (p *Producer[T]) claimCtx(ctx context.Context) (*Slot[T], error) {
	slot, err := p.spinClaim(ctx, true)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (p *Producer[T]) spinClaim(ctx context.Context, honorCtx bool) (*Slot[T], error) {
	spins := 0
	budget := p.buffer.cfg.spinBudget
	for {
		if honorCtx {
			select {
			case <-ctx.Done():
				return nil, newShutdownError(ctx.Err())
			default:
			}
		}

		pos := p.buffer.head.Load()
		idx := pos & p.buffer.mask
		slot := &p.buffer.slots[idx]

		if slot.loadState() == stateFree {
			if slot.casState(stateFree, stateClaimed) {
				// Advance head immediately after the CAS that claims
				// the slot, before writing the payload, so a racing
				// producer observes the new candidate slot rather than
				// retrying against the slot we just claimed.
				p.buffer.head.Add(1)
				return slot, nil
			}
			// Lost the race; another producer claimed it first.
			spins++
		} else {
			// Slot not free: another producer has claimed it, or the
			// ring is exhausted, since sequenced slots are never
			// returned to Free (reading them does not release them).
			spins++
		}

		if spins >= budget {
			p.buffer.cfg.metrics.ProducerSpin()
			if p.buffer.cfg.logger.Core().Enabled(zap.DebugLevel) {
				p.buffer.cfg.logger.Debug("ringlog: producer spinning on slot", zap.Uint8("producer_id", p.id))
			}
			runtime.Gosched()
			spins = 0
		}
	}
}
