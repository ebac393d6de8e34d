package desmume

import (
	"testing"

	"github.com/murkland/desmume/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeymask(t *testing.T) {
	assert.Equal(t, Keys(0), Keymask(KeyNone))
	assert.Equal(t, Keys(1), Keymask(KeyA))
	assert.Equal(t, Keys(1<<3), Keymask(KeyStart))
	assert.Equal(t, Keys(1<<14), Keymask(KeyLid))

	ks := Keys(0).Add(Keymask(KeyA)).Add(Keymask(KeyB))
	assert.Equal(t, Keys(0b11), ks)
	assert.Equal(t, Keys(0b10), ks.Remove(Keymask(KeyA)))
	assert.Equal(t, ks, ks.Remove(Keymask(KeyX)))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "Lid", KeyLid.String())
	assert.Equal(t, "None", KeyNone.String())
	assert.Equal(t, "None", Key(99).String())
}

func TestLanguageText(t *testing.T) {
	for lang := LanguageJapanese; lang <= LanguageSpanish; lang++ {
		text, err := lang.MarshalText()
		require.NoError(t, err)

		var got Language
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, lang, got)
	}

	var l Language
	assert.Error(t, l.UnmarshalText([]byte("klingon")))
	_, err := Language(42).MarshalText()
	assert.Error(t, err)
}

func TestRGBToRGBA(t *testing.T) {
	img := rgbToRGBA([]byte{1, 2, 3, 4, 5, 6}, 2, 1)
	assert.Equal(t, []byte{1, 2, 3, 0xff, 4, 5, 6, 0xff}, img.Pix)
}

func TestHookTableDispatchesPerKind(t *testing.T) {
	var table hookTable

	var writes, execs []uint32
	table.set(memory.WatchWrite, func(address uint32, size int) { writes = append(writes, address) })
	table.set(memory.WatchExec, func(address uint32, size int) { execs = append(execs, address) })

	table.call(memory.WatchWrite, 0x10, 1)
	table.call(memory.WatchExec, 0x20, 2)
	table.call(memory.WatchRead, 0x30, 4)

	assert.Equal(t, []uint32{0x10}, writes)
	assert.Equal(t, []uint32{0x20}, execs)
}

func TestClosedEmulator(t *testing.T) {
	e := &Emulator{}

	assert.ErrorIs(t, e.Open("game.nds", false), ErrClosed)
	assert.False(t, e.Running())
	assert.NotPanics(t, e.Close)
}

func TestBindHook(t *testing.T) {
	t.Cleanup(func() { nativeHooks = hookTable{} })
	m := &Memory{}

	assert.Zero(t, m.bindHook(memory.WatchWrite, nil))

	var first, second []uint32
	ptr := m.bindHook(memory.WatchRead, func(address uint32, size int) { first = append(first, address) })
	assert.NotZero(t, ptr)
	assert.Equal(t, ptr, m.bindHook(memory.WatchRead, func(address uint32, size int) { second = append(second, address) }))

	nativeHooks.call(memory.WatchRead, 0x40, 1)
	assert.Empty(t, first)
	assert.Equal(t, []uint32{0x40}, second)

	// Unbinding only hands the core a null callback.
	assert.Zero(t, m.bindHook(memory.WatchRead, nil))
	nativeHooks.call(memory.WatchRead, 0x44, 1)
	assert.Equal(t, []uint32{0x40, 0x44}, second)
}
