package ringlog

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestIntegration_MultipleProducersNoLostEvents mirrors the reference
// implementation's multiple_producers_no_lost_events: four producers each
// push 50 events into a capacity-512 buffer, and a single consumer must
// eventually observe all 200 with contiguous sequences and unique
// payloads.
func TestIntegration_MultipleProducersNoLostEvents(t *testing.T) {
	const numProducers = 4
	const perProducer = 50
	const total = numProducers * perProducer

	buf, err := NewBuilder[int64]().Capacity(512).Build()
	require.NoError(t, err)

	handle := buf.Start()
	defer func() {
		handle.Stop()
		_ = handle.Join()
	}()

	var wg sync.WaitGroup
	for prodID := 0; prodID < numProducers; prodID++ {
		wg.Add(1)
		go func(prodID int) {
			defer wg.Done()
			p := buf.Producer()
			for i := 0; i < perProducer; i++ {
				p.PushBlocking(int64(prodID)*1000 + int64(i))
			}
		}(prodID)
	}
	wg.Wait()

	c := buf.Consumer()
	events := make([]Event[int64], 0, total)
	require.Eventually(t, func() bool {
		for {
			event, ok := c.TryNext()
			if !ok {
				break
			}
			events = append(events, event)
		}
		return len(events) == total
	}, 2*time.Second, time.Millisecond)

	seen := make(map[int64]bool, total)
	for i, event := range events {
		require.Equal(t, uint64(i), event.Sequence, "sequence must be contiguous")
		require.False(t, seen[event.Payload], "payload must be unique")
		seen[event.Payload] = true
	}

	want := make(map[int64]bool, total)
	for prodID := 0; prodID < numProducers; prodID++ {
		for i := 0; i < perProducer; i++ {
			want[int64(prodID)*1000+int64(i)] = true
		}
	}
	require.Equal(t, want, seen)
}

// TestIntegration_DeterministicReplaySameOrder mirrors the reference
// implementation's deterministic_replay_same_order: two independent
// consumers reading the same sequenced stream observe identical
// sequence, payload, and timestamp values in the same order.
func TestIntegration_DeterministicReplaySameOrder(t *testing.T) {
	const numEvents = 50

	buf, err := NewBuilder[int64]().Capacity(256).Build()
	require.NoError(t, err)

	handle := buf.Start()
	defer func() {
		handle.Stop()
		_ = handle.Join()
	}()

	p := buf.Producer()
	for i := 0; i < numEvents; i++ {
		p.PushBlocking(int64(i))
	}

	c1 := buf.Consumer()
	c2 := buf.Consumer()

	var events1, events2 []Event[int64]
	require.Eventually(t, func() bool {
		for {
			event, ok := c1.TryNext()
			if !ok {
				break
			}
			events1 = append(events1, event)
		}
		return len(events1) == numEvents
	}, 2*time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		for {
			event, ok := c2.TryNext()
			if !ok {
				break
			}
			events2 = append(events2, event)
		}
		return len(events2) == numEvents
	}, 2*time.Second, time.Millisecond)

	require.Equal(t, events1, events2)
}
