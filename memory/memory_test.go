package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	port := newFakePort()
	port.load(0x02000000, []byte{0x80, 0x01, 0xff, 0xff, 0xff, 0x7f})
	mem := New(port)

	u, err := mem.Unsigned.At(0x02000000)
	require.NoError(t, err)
	assert.Equal(t, int64(0x80), u)

	s, err := mem.Signed.At(0x02000000)
	require.NoError(t, err)
	assert.Equal(t, int64(-128), s)

	res, err := mem.Unsigned.Slice(0x02000000, 0x02000002)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x01}, res.Bytes())

	res, err = mem.Signed.Slice(0x02000000, 0x02000002)
	require.NoError(t, err)
	assert.Equal(t, []int64{-128, 1}, res.Values())

	res, err = mem.Unsigned.SliceStep(0x02000002, 0x02000002, Long)
	require.NoError(t, err)
	assert.Equal(t, ResultScalar, res.Kind())
	assert.Equal(t, int64(0x7fffffff), res.Scalar())

	v, err := mem.Signed.Read16(0x02000002)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)

	v, err = mem.Unsigned.Read32(0x02000002)
	require.NoError(t, err)
	assert.Equal(t, int64(0x7fffffff), v)
}

func TestAccessorWritesIgnoreSignedness(t *testing.T) {
	port := newFakePort()
	mem := New(port)

	require.NoError(t, mem.Signed.Set(0x10, -1))
	require.NoError(t, mem.Unsigned.SetSlice(0x20, 0x24, Short, []int64{-2, 0x1234}))

	assert.Equal(t, byte(0xff), port.mem[0x10])
	assert.Equal(t, []byte{0xfe, 0xff, 0x34, 0x12}, port.bytes(0x20, 4))

	mem.Write8(0x30, 1)
	mem.Write16(0x32, 0x0302)
	mem.Write32(0x34, 0x07060504)
	assert.Equal(t, []byte{1, 0, 2, 3, 4, 5, 6, 7}, port.bytes(0x30, 8))
}

func TestNextInstruction(t *testing.T) {
	port := newFakePort()
	mem := New(port)

	require.NoError(t, mem.SetNextInstruction(0x02004000))
	pc, err := mem.NextInstruction()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x02004000), pc)

	bare := New(struct{ Port }{port})
	_, err = bare.NextInstruction()
	assert.ErrorIs(t, err, ErrNoInstruction)
}
