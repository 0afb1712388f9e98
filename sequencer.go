package ringlog

import (
	"runtime"
	"sync"
)

// Handle controls the dedicated sequencer goroutine's lifecycle: a stop
// flag plus a join.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Stop signals the sequencer to exit at the top of its next iteration.
// Safe to call more than once and safe to call concurrently with Join.
func (h *Handle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// Join blocks until the sequencer goroutine has exited.
func (h *Handle) Join() error {
	<-h.done
	return nil
}

// Stopped returns a channel that is closed once the sequencer goroutine
// has exited, so a caller can select on shutdown instead of blocking in
// Join.
func (h *Handle) Stopped() <-chan struct{} {
	return h.done
}

func startSequencer[T any](buf *Buffer[T]) *Handle {
	h := &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go runSequencer(buf, h)
	return h
}

// runSequencer is the dedicated single-threaded linearisation point: it
// scans slot indices in strict ascending order, waits on Claimed,
// promotes Published to Sequenced while stamping a monotonically
// increasing sequence number, and never leaps over a Free slot -- doing
// so would let a later producer's claim be sequenced ahead of an
// earlier one still mid-publish.
func runSequencer[T any](buf *Buffer[T], h *Handle) {
	defer close(h.done)

	var nextSeq uint64
	var scanPos uint64
	spins := 0
	budget := buf.cfg.spinBudget

	for {
		select {
		case <-h.stop:
			return
		default:
		}

		idx := scanPos & buf.mask
		slot := &buf.slots[idx]

		switch slot.loadState() {
		case statePublished:
			slot.sequence.Store(nextSeq)
			slot.storeState(stateSequenced)

			buf.cfg.metrics.SlotSequenced()
			buf.stats.nextSequence.Store(nextSeq + 1)
			buf.stats.scanPos.Store(scanPos + 1)

			nextSeq++
			scanPos++
			spins = 0

		case stateClaimed:
			// The producer that claimed this slot is mid-write; spin in
			// place without advancing. This preserves ordering: a later
			// slot must never be sequenced before this one.
			buf.stats.spinsClaimed.Add(1)
			spins++
			if spins >= budget {
				runtime.Gosched()
				spins = 0
			}

		default:
			// Free (not yet claimed) or Sequenced (unreachable in this
			// non-recycling design's forward progress, since each slot
			// is sequenced at most once). Either way, spin in place:
			// leaping over a Free slot would let a higher-indexed claim
			// be sequenced out of order.
			buf.stats.spinsFree.Add(1)
			spins++
			if spins >= budget {
				runtime.Gosched()
				spins = 0
			}
		}
	}
}
