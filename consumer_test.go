package ringlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConsumer_TryNext_EmptyReturnsFalse(t *testing.T) {
	buf, err := NewBuilder[int]().Capacity(16).Build()
	require.NoError(t, err)

	c := buf.Consumer()
	_, ok := c.TryNext()
	require.False(t, ok)
	require.Zero(t, c.Cursor())
}

func TestConsumer_IndependentCursors(t *testing.T) {
	buf, err := NewBuilder[int]().Capacity(64).Build()
	require.NoError(t, err)

	handle := buf.Start()
	defer func() {
		handle.Stop()
		_ = handle.Join()
	}()

	p := buf.Producer()
	for i := 0; i < 10; i++ {
		p.PushBlocking(i)
	}

	c1 := buf.Consumer()
	c2 := buf.Consumer()

	for i := 0; i < 5; i++ {
		require.Eventually(t, func() bool {
			_, ok := c1.TryNext()
			return ok
		}, time.Second, time.Millisecond)
	}
	for i := 0; i < 3; i++ {
		require.Eventually(t, func() bool {
			_, ok := c2.TryNext()
			return ok
		}, time.Second, time.Millisecond)
	}

	var e1, e2 Event[int]
	var ok1, ok2 bool
	require.Eventually(t, func() bool {
		e1, ok1 = c1.TryNext()
		return ok1
	}, time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		e2, ok2 = c2.TryNext()
		return ok2
	}, time.Second, time.Millisecond)

	require.Equal(t, uint64(5), e1.Sequence)
	require.Equal(t, uint64(3), e2.Sequence)
}

func TestConsumer_Events_IteratesUntilExhausted(t *testing.T) {
	buf, err := NewBuilder[int]().Capacity(32).Build()
	require.NoError(t, err)

	handle := buf.Start()
	defer func() {
		handle.Stop()
		_ = handle.Join()
	}()

	p := buf.Producer()
	for i := 0; i < 5; i++ {
		p.PushBlocking(i * 10)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := buf.Consumer()
	var got []int
	for event := range c.Events(ctx) {
		got = append(got, event.Payload)
		if len(got) == 5 {
			break
		}
	}
	require.Equal(t, []int{0, 10, 20, 30, 40}, got)
}
