package ringlog

// Event is the immutable record handed to a consumer once a slot has
// been sequenced. Its fields are stable from the moment the producer
// released Published state onward; a consumer that observes Sequenced
// is guaranteed (via the release/acquire pairing on the state word) to
// observe the values below exactly as the producer wrote them.
type Event[T any] struct {
	Sequence   uint64
	Timestamp  uint64
	ProducerID uint8
	Payload    T
}
