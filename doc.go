// Package ringlog implements a lock-free, multi-producer/multi-consumer
// in-memory event log with a dedicated sequencer goroutine that assigns
// a strict total order to published events.
//
// A Buffer owns a fixed, power-of-two-sized ring of slots. Producers
// claim a slot with a single compare-and-swap, write their payload
// under exclusive ownership, and publish with a release store. A single
// sequencer goroutine scans slots in index order, promoting each from
// Published to Sequenced and stamping a monotonically increasing
// sequence number; because producers claim slots in head-atomic order,
// slot-index order equals claim order, so the sequencer's order is
// reproducible independent of wall-clock publish timing. Any number of
// independent Consumers replay the resulting stream deterministically
// from their own cursor.
//
// The buffer does not recycle slots: once sequenced, a slot is never
// returned to Free, so it is bounded to Capacity() published events
// over its lifetime. This is a deliberate limitation, not an oversight
// -- see DESIGN.md for the rationale.
package ringlog
