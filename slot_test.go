package ringlog

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSlotState_String(t *testing.T) {
	cases := map[slotState]string{
		stateFree:      "free",
		stateClaimed:   "claimed",
		statePublished: "published",
		stateSequenced: "sequenced",
		slotState(99):  "unknown",
	}
	for state, want := range cases {
		require.Equal(t, want, state.String())
	}
}

func TestSlot_CasStateOnlyFreeToClaimed(t *testing.T) {
	var s Slot[int]

	require.Equal(t, stateFree, s.loadState())
	require.True(t, s.casState(stateFree, stateClaimed))
	require.Equal(t, stateClaimed, s.loadState())

	// Re-attempting the same transition fails: the slot is no longer Free.
	require.False(t, s.casState(stateFree, stateClaimed))

	s.storeState(statePublished)
	require.Equal(t, statePublished, s.loadState())

	s.storeState(stateSequenced)
	require.Equal(t, stateSequenced, s.loadState())
}

// TestSlot_SizeIsCacheLineMultiple checks the achievable half of the
// layout invariant: Go cannot force a slice's backing array onto a
// 64-byte start boundary, but the padding in Slot[T] can still keep each
// element's size a multiple of 64 bytes so adjacent elements in a
// naturally-aligned allocation don't straddle a cache line.
func TestSlot_SizeIsCacheLineMultiple(t *testing.T) {
	require.Zero(t, unsafe.Sizeof(Slot[uint64]{})%64)
}
