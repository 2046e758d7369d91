// +build linux

package ioprio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

func TestGetSelf(t *testing.T) {
	// pid 0 is the calling process
	_, err := Get(Process(0))
	require.NoError(t, err)
}

func TestGetSelfByPid(t *testing.T) {
	byZero, err := Get(Process(0))
	require.NoError(t, err)
	byPid, err := Get(Process(os.Getpid()))
	require.NoError(t, err)
	assert.Equal(t, byZero, byPid)
}

func TestSetAndGetSelf(t *testing.T) {
	original, err := Get(Process(0))
	require.NoError(t, err)
	defer func() {
		// the original mask is always re-assignable: it either names a
		// class we were already allowed to hold, or is the unset sentinel
		require.NoError(t, Set(Process(0), original))
	}()

	want := New(BestEffort(FallbackBestEffortLevel()))
	require.NoError(t, Set(Process(0), want))

	got, err := Get(Process(0))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	class, ok := got.Class()
	require.True(t, ok)
	assert.Equal(t, KindBestEffort, class.Kind())
}

func TestSetIdleSelf(t *testing.T) {
	original, err := Get(Process(0))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, Set(Process(0), original))
	}()

	require.NoError(t, Set(Process(0), New(Idle())))

	got, err := Get(Process(0))
	require.NoError(t, err)
	class, ok := got.Class()
	require.True(t, ok)
	assert.Equal(t, Idle(), class)
}

func TestGetNoSuchProcess(t *testing.T) {
	// no pid can ever be negative
	_, err := Get(Process(-1))
	require.Error(t, err)
	assert.Equal(t, unix.ESRCH, err)
}

func TestSetRealtimeNeedsPrivilege(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running privileged, realtime assignment would succeed")
	}
	err := Set(Process(0), New(Realtime(HighestRealtimeLevel())))
	require.Error(t, err)
	assert.Equal(t, unix.EPERM, err)
}
