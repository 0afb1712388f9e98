package ringlog

import "sync/atomic"

// slotState is the four-valued discriminant every transition pivots on.
// Go has no atomic 8-bit word, so the discriminant is widened to 32 bits
// (see DESIGN.md) while keeping the one-way transition sequence:
// Free -> Claimed -> Published -> Sequenced.
type slotState uint32

const (
	stateFree slotState = iota
	stateClaimed
	statePublished
	stateSequenced
)

func (s slotState) String() string {
	switch s {
	case stateFree:
		return "free"
	case stateClaimed:
		return "claimed"
	case statePublished:
		return "published"
	case stateSequenced:
		return "sequenced"
	default:
		return "unknown"
	}
}

// Slot is one cell in the ring buffer: the atomic state word, the
// sequence number assigned by the sequencer, a timestamp captured at
// publish, the claiming producer's id, and the payload itself.
//
// Layout keeps a cache-line discipline: the state word and sequence live
// in the first 16 bytes (the hot words every agent touches), the
// producer-written fields follow, and trailing padding rounds the slot
// up to a 64-byte stride so that two adjacent slots never share a cache
// line once the backing slice is allocated. Go has no portable way to
// force the *start* of a slice's backing array onto a 64-byte boundary
// without unsafe pointer arithmetic (there is no struct alignment
// attribute above the machine word); this module accepts that gap rather
// than claiming a guarantee Go cannot make.
type Slot[T any] struct {
	state      atomic.Uint32
	_          [4]byte
	sequence   atomic.Uint64
	timestamp  uint64
	producerID uint8
	_          [7]byte
	payload    T
	_          [24]byte // best-effort cache-line padding for small payloads
}

func (s *Slot[T]) loadState() slotState {
	return slotState(s.state.Load())
}

// casState attempts the one-way Free->Claimed transition. Every other
// transition is performed by a single designated agent (the claimer for
// Claimed->Published, the sequencer alone for Published->Sequenced) and
// therefore never contends, so only this edge needs compare-and-swap.
func (s *Slot[T]) casState(from, to slotState) bool {
	return s.state.CompareAndSwap(uint32(from), uint32(to))
}

func (s *Slot[T]) storeState(to slotState) {
	s.state.Store(uint32(to))
}
