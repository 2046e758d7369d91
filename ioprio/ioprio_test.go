package ioprio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownMasks(t *testing.T) {
	rt0, _ := NewRealtimeLevel(0)
	be4, _ := NewBestEffortLevel(4)

	assert.Equal(t, uint16(0x2000), New(Realtime(rt0)).Inner())
	assert.Equal(t, uint16(0x4004), New(BestEffort(be4)).Inner())
	assert.Equal(t, uint16(0x6000), New(Idle()).Inner())
}

func TestDecodeKnownMasks(t *testing.T) {
	class, ok := FromInner(0x2000).Class()
	require.True(t, ok)
	assert.Equal(t, Realtime(HighestRealtimeLevel()), class)

	class, ok = FromInner(0x4004).Class()
	require.True(t, ok)
	assert.Equal(t, BestEffort(FallbackBestEffortLevel()), class)

	class, ok = FromInner(0x6000).Class()
	require.True(t, ok)
	assert.Equal(t, Idle(), class)
}

func TestRoundTripAllClasses(t *testing.T) {
	var classes []Class
	for n := 0; n <= 7; n++ {
		rt, _ := NewRealtimeLevel(n)
		be, _ := NewBestEffortLevel(n)
		classes = append(classes, Realtime(rt), BestEffort(be))
	}
	classes = append(classes, Idle())

	for _, class := range classes {
		decoded, ok := New(class).Class()
		require.True(t, ok, "%v", class)
		assert.Equal(t, class, decoded)
	}
}

func TestDecodeRejectsMalformedMasks(t *testing.T) {
	for _, raw := range []uint16{
		0x0000, // unset sentinel
		0x0004, // data without a class
		0x2008, // realtime with level 8
		0x200A, // realtime with level 10
		0x3FFF, // realtime with all data bits set
		0x4008, // best-effort with level 8
		0x5FFF, // best-effort with all data bits set
		0x8000, // reserved kind 4
		0xA000, // reserved kind 5
		0xE005, // reserved kind 7
		0xFFFF,
	} {
		_, ok := FromInner(raw).Class()
		assert.False(t, ok, "%#04x", raw)
	}
}

func TestDecodeIdleIgnoresDataBits(t *testing.T) {
	for _, raw := range []uint16{0x6000, 0x6001, 0x6007, 0x7FFF} {
		class, ok := FromInner(raw).Class()
		require.True(t, ok, "%#04x", raw)
		assert.Equal(t, Idle(), class)
	}
}

func TestStandardPriority(t *testing.T) {
	assert.Equal(t, uint16(0), Standard().Inner())
	_, ok := Standard().Class()
	assert.False(t, ok)
	assert.Equal(t, Standard(), FromInner(0))
}

func TestInnerRoundTrip(t *testing.T) {
	for _, raw := range []uint16{0, 0x2000, 0x4004, 0x6000, 0xBEEF} {
		assert.Equal(t, raw, FromInner(raw).Inner())
	}
}

func TestPriorityOrderingIsPartial(t *testing.T) {
	rt := New(Realtime(HighestRealtimeLevel()))
	be := New(BestEffort(FallbackBestEffortLevel()))
	idle := New(Idle())

	cmp, ok := rt.Compare(be)
	require.True(t, ok)
	assert.Equal(t, 1, cmp)

	cmp, ok = be.Compare(idle)
	require.True(t, ok)
	assert.Equal(t, 1, cmp)

	cmp, ok = idle.Compare(idle)
	require.True(t, ok)
	assert.Equal(t, 0, cmp)

	// masks that decode to nothing are unordered, on either side
	_, ok = Standard().Compare(be)
	assert.False(t, ok)
	_, ok = be.Compare(FromInner(0x200A))
	assert.False(t, ok)
	_, ok = Standard().Compare(Standard())
	assert.False(t, ok)
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "none", Standard().String())
	assert.Equal(t, "best-effort/4", New(BestEffort(FallbackBestEffortLevel())).String())
	assert.Equal(t, "0x200a", FromInner(0x200A).String())
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "process 1234", Process(1234).String())
	assert.Equal(t, "process group 0", ProcessGroup(0).String())
	assert.Equal(t, "user 1000", User(1000).String())
}
