package trace

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/murkland/desmume/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterUnmarshal(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, "game.nds")
	require.NoError(t, err)

	events := []Event{
		{Frame: 1, Kind: memory.WatchWrite, Address: 0x02000000, Size: 4, Value: 0xdeadbeef},
		{Frame: 1, Kind: memory.WatchRead, Address: 0x02000010, Size: 1, Value: 0x7f},
		{Frame: 9, Kind: memory.WatchExec, Address: 0x02004000, Size: 2, Value: 0x4770},
	}
	for _, ev := range events {
		require.NoError(t, w.Write(ev))
	}
	require.NoError(t, w.Close())

	tr, err := Unmarshal(&buf)
	require.NoError(t, err)
	assert.Equal(t, "game.nds", tr.ROM)
	assert.Equal(t, events, tr.Events)
}

func TestWriterFlushesPeriodically(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, "")
	require.NoError(t, err)
	afterHeader := buf.Len()

	for i := 0; i < flushEvery-1; i++ {
		require.NoError(t, w.Write(Event{Frame: uint32(i)}))
	}
	assert.Equal(t, afterHeader, buf.Len())

	require.NoError(t, w.Write(Event{}))
	assert.Greater(t, buf.Len(), afterHeader)
}

func TestUnmarshalTruncated(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, writeHeader(zw, traceHeader, traceVersion))
	require.NoError(t, binary.Write(zw, binary.LittleEndian, uint16(0)))
	require.NoError(t, binary.Write(zw, binary.LittleEndian, record{Frame: 3, Kind: 2, Address: 0x100, Size: 2, Value: 0xffff}))
	_, err = zw.Write([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	tr, err := Unmarshal(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Event{{Frame: 3, Kind: memory.WatchExec, Address: 0x100, Size: 2, Value: 0xffff}}, tr.Events)
}

func TestUnmarshalRejectsBadHeader(t *testing.T) {
	for _, tc := range []struct {
		name    string
		header  string
		version uint8
	}{
		{"magic", "TOOT", traceVersion},
		{"version", traceHeader, traceVersion + 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			zw, err := zstd.NewWriter(&buf)
			require.NoError(t, err)
			require.NoError(t, writeHeader(zw, tc.header, tc.version))
			require.NoError(t, zw.Close())

			_, err = Unmarshal(&buf)
			assert.Error(t, err)
		})
	}
}

func TestEventString(t *testing.T) {
	ev := Event{Frame: 12, Kind: memory.WatchWrite, Address: 0x0200abcd, Size: 2, Value: 0x1f}

	assert.Equal(t, "12: write 0200abcd/2 = 001f", ev.String())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	dump := Dump{Start: 0x02000000, Data: []byte{0, 1, 2, 3, 0xff}}

	require.NoError(t, WriteDump(&buf, dump))

	got, err := ReadDump(&buf)
	require.NoError(t, err)
	assert.Equal(t, &dump, got)
}

func TestReadDumpOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, writeHeader(zw, dumpHeader, dumpVersion))
	require.NoError(t, binary.Write(zw, binary.LittleEndian, uint32(0x02000000)))
	require.NoError(t, binary.Write(zw, binary.LittleEndian, uint32(0xffffffff)))
	_, err = zw.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadDump(&buf)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestNewWriterFailingSink(t *testing.T) {
	_, err := NewWriter(failingWriter{}, "game.nds")
	assert.Error(t, err)

	assert.Error(t, WriteDump(failingWriter{}, Dump{Data: []byte{1}}))
}
