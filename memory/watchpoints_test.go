package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchpointsReplace(t *testing.T) {
	port := newFakePort()
	w := NewWatchpoints(port)

	var first, second int
	w.OnWrite(0x02000000, func(address uint32, size int) { first++ }, DefaultWriteSize)
	w.OnWrite(0x02000000, func(address uint32, size int) { second++ }, DefaultWriteSize)

	require.True(t, port.trigger(WatchWrite, 0x02000000, 0x02000000, 1))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, w.Len())
}

func TestWatchpointsRemove(t *testing.T) {
	port := newFakePort()
	w := NewWatchpoints(port)

	var calls int
	hook := func(address uint32, size int) { calls++ }
	w.OnRead(0x100, hook, DefaultReadSize)
	w.OnExec(0x100, hook, DefaultExecSize)
	require.Equal(t, 2, w.Len())

	w.OnRead(0x100, nil, DefaultReadSize)
	assert.False(t, port.trigger(WatchRead, 0x100, 0x100, 1))
	assert.False(t, w.Registered(WatchRead, 0x100))
	assert.True(t, w.Registered(WatchExec, 0x100))
	assert.Equal(t, 1, w.Len())

	assert.True(t, port.trigger(WatchExec, 0x100, 0x100, 2))
	assert.Equal(t, 1, calls)

	w.Clear()
	assert.Zero(t, w.Len())
	assert.False(t, port.trigger(WatchExec, 0x100, 0x100, 2))
}

func TestWatchpointsKindsAreIndependent(t *testing.T) {
	port := newFakePort()
	w := NewWatchpoints(port)

	var got []WatchKind
	for _, kind := range []WatchKind{WatchWrite, WatchRead, WatchExec} {
		kind := kind
		w.Set(kind, 0x40, func(address uint32, size int) { got = append(got, kind) }, 1)
	}

	port.trigger(WatchRead, 0x40, 0x40, 1)
	port.trigger(WatchExec, 0x40, 0x40, 2)
	port.trigger(WatchWrite, 0x40, 0x40, 4)
	assert.Equal(t, []WatchKind{WatchRead, WatchExec, WatchWrite}, got)
}

func TestWatchpointsPassEventThrough(t *testing.T) {
	port := newFakePort()
	w := NewWatchpoints(port)

	var gotAddress uint32
	var gotSize int
	w.OnWrite(0x2000, func(address uint32, size int) {
		gotAddress = address
		gotSize = size
	}, 4)
	assert.Equal(t, 4, port.sizes[WatchWrite][0x2000])

	port.trigger(WatchWrite, 0x2000, 0x2002, 2)
	assert.Equal(t, uint32(0x2002), gotAddress)
	assert.Equal(t, 2, gotSize)

	gotAddress = 0
	port.trigger(WatchWrite, 0x2000, 0x2004, 2)
	assert.Zero(t, gotAddress)
}

func TestWatchpointsHookCanReenter(t *testing.T) {
	port := newFakePort()
	port.load(0x300, []byte{0x2a})
	mem := New(port)

	var seen int64
	mem.Watchpoints.OnExec(0x300, func(address uint32, size int) {
		v, err := mem.Unsigned.Read8(address)
		require.NoError(t, err)
		seen = v
		mem.Watchpoints.OnExec(address, nil, size)
	}, DefaultExecSize)

	require.True(t, port.trigger(WatchExec, 0x300, 0x300, 2))
	assert.Equal(t, int64(0x2a), seen)
	assert.Zero(t, mem.Watchpoints.Len())
}

func TestWatchKindString(t *testing.T) {
	assert.Equal(t, "write", WatchWrite.String())
	assert.Equal(t, "read", WatchRead.String())
	assert.Equal(t, "exec", WatchExec.String())
}

func TestDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultWriteSize, DefaultSize(WatchWrite))
	assert.Equal(t, DefaultReadSize, DefaultSize(WatchRead))
	assert.Equal(t, DefaultExecSize, DefaultSize(WatchExec))
}
