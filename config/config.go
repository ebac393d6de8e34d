package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/murkland/desmume/desmume"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

type Key ebiten.Key

func (k *Key) UnmarshalText(text []byte) error {
	for i := ebiten.Key(0); i <= ebiten.KeyMax; i++ {
		if i.String() == string(text) {
			*k = Key(i)
			return nil
		}
	}
	return fmt.Errorf("unknown key: %s", string(text))
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(ebiten.Key(k).String()), nil
}

type Keymapping struct {
	A      Key
	B      Key
	Select Key
	Start  Key
	Right  Key
	Left   Key
	Up     Key
	Down   Key
	R      Key
	L      Key
	X      Key
	Y      Key
	Debug  Key
	Boost  Key
	Lid    Key

	Pause      Key
	Reset      Key
	Screenshot Key
	Mute       Key
	DebugSpew  Key
}

// DSKeys maps each DS key to the keyboard key that presses it.
func (km Keymapping) DSKeys() map[desmume.Key]Key {
	return map[desmume.Key]Key{
		desmume.KeyA:      km.A,
		desmume.KeyB:      km.B,
		desmume.KeySelect: km.Select,
		desmume.KeyStart:  km.Start,
		desmume.KeyRight:  km.Right,
		desmume.KeyLeft:   km.Left,
		desmume.KeyUp:     km.Up,
		desmume.KeyDown:   km.Down,
		desmume.KeyR:      km.R,
		desmume.KeyL:      km.L,
		desmume.KeyX:      km.X,
		desmume.KeyY:      km.Y,
		desmume.KeyDebug:  km.Debug,
		desmume.KeyBoost:  km.Boost,
		desmume.KeyLid:    km.Lid,
	}
}

type Joystick struct {
	Enabled bool
	Keys    [desmume.NumKeys]uint16
}

type Library struct {
	Path string
}

type Emulator struct {
	Language   desmume.Language
	SaveType   int
	Volume     int
	Frameskip  int
	FPSLimiter bool
}

// Codec names a text encoding by its WHATWG label, e.g. "windows-1255".
type Codec string

func (c *Codec) UnmarshalText(text []byte) error {
	if _, err := htmlindex.Get(string(text)); err != nil {
		return fmt.Errorf("unknown codec: %s", string(text))
	}
	*c = Codec(text)
	return nil
}

func (c Codec) Encoding() (encoding.Encoding, error) {
	return htmlindex.Get(string(c))
}

type Memory struct {
	StringCodec  Codec
	StringMaxLen int
}

type Display struct {
	Scale int
	Gap   int
}

type Config struct {
	Library    Library
	Emulator   Emulator
	Keymapping Keymapping
	Joystick   Joystick
	Memory     Memory
	Display    Display
}

func Default() Config {
	return Config{
		Emulator: Emulator{
			Language:   desmume.LanguageEnglish,
			Volume:     100,
			FPSLimiter: true,
		},
		Keymapping: Keymapping{
			A:      Key(ebiten.KeyX),
			B:      Key(ebiten.KeyZ),
			Select: Key(ebiten.KeyShiftRight),
			Start:  Key(ebiten.KeyEnter),
			Right:  Key(ebiten.KeyArrowRight),
			Left:   Key(ebiten.KeyArrowLeft),
			Up:     Key(ebiten.KeyArrowUp),
			Down:   Key(ebiten.KeyArrowDown),
			R:      Key(ebiten.KeyW),
			L:      Key(ebiten.KeyQ),
			X:      Key(ebiten.KeyS),
			Y:      Key(ebiten.KeyA),
			Debug:  Key(ebiten.KeyO),
			Boost:  Key(ebiten.KeyTab),
			Lid:    Key(ebiten.KeyBackspace),

			Pause:      Key(ebiten.KeyP),
			Reset:      Key(ebiten.KeyR),
			Screenshot: Key(ebiten.KeyF12),
			Mute:       Key(ebiten.KeyM),
			DebugSpew:  Key(ebiten.KeyBackquote),
		},
		Joystick: Joystick{
			Keys: desmume.DefaultJoystickConfig,
		},
		Memory: Memory{
			StringCodec: "windows-1255",
		},
		Display: Display{
			Scale: 2,
		},
	}
}

func Save(config Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(config)
}

func Load(r io.Reader) (Config, error) {
	c := Default()

	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return c, err
	}

	return c, nil
}
