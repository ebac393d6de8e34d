package main

import (
	"testing"

	"github.com/murkland/desmume/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWatch(t *testing.T) {
	for _, tc := range []struct {
		name string
		kind memory.WatchKind
		in   string
		want watchArg
	}{
		{"write default size", memory.WatchWrite, "02000000", watchArg{memory.WatchWrite, 0x02000000, 1}},
		{"exec default size", memory.WatchExec, "0x2004000", watchArg{memory.WatchExec, 0x02004000, 2}},
		{"explicit size", memory.WatchRead, "0x0200ABCD:4", watchArg{memory.WatchRead, 0x0200abcd, 4}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseWatch(tc.kind, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseWatchErrors(t *testing.T) {
	for _, in := range []string{"", "zz", "100:0", "100:x", "100000000"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseWatch(memory.WatchWrite, in)
			assert.Error(t, err)
		})
	}
}

func TestParseRange(t *testing.T) {
	start, end, err := parseRange("0x02000000:0x02000100")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x02000000), start)
	assert.Equal(t, uint32(0x02000100), end)

	for _, in := range []string{"100", "100:100", "200:100", "x:100", "100:x"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := parseRange(in)
			assert.Error(t, err)
		})
	}
}
