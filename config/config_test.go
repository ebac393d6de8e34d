package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/murkland/desmume/desmume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := Default()
	c.Emulator.Language = desmume.LanguageGerman
	c.Keymapping.A = Key(ebiten.KeyK)
	c.Memory.StringCodec = "shift_jis"

	var buf bytes.Buffer
	require.NoError(t, Save(c, &buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoadKeepsDefaults(t *testing.T) {
	got, err := Load(strings.NewReader(`
[Emulator]
Language = "french"
Frameskip = 2
`))
	require.NoError(t, err)
	assert.Equal(t, desmume.LanguageFrench, got.Emulator.Language)
	assert.Equal(t, 2, got.Emulator.Frameskip)
	assert.Equal(t, 100, got.Emulator.Volume)
	assert.Equal(t, Default().Keymapping, got.Keymapping)
	assert.Equal(t, desmume.DefaultJoystickConfig, got.Joystick.Keys)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	_, err := Load(strings.NewReader(`
[Memory]
StringCodec = "not-a-codec"
`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`
[Keymapping]
A = "NoSuchKey"
`))
	assert.Error(t, err)
}

func TestCodecEncoding(t *testing.T) {
	enc, err := Default().Memory.StringCodec.Encoding()
	require.NoError(t, err)

	s, err := enc.NewDecoder().String("\xf9")
	require.NoError(t, err)
	assert.Equal(t, "ש", s)
}

func TestDSKeys(t *testing.T) {
	keys := Default().Keymapping.DSKeys()
	assert.Len(t, keys, desmume.NumKeys)
	assert.Equal(t, Key(ebiten.KeyEnter), keys[desmume.KeyStart])
}
