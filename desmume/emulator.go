package desmume

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/murkland/desmume/memory"
)

type Language int

const (
	LanguageJapanese Language = iota
	LanguageEnglish
	LanguageFrench
	LanguageGerman
	LanguageItalian
	LanguageSpanish
)

var languageNames = []string{"japanese", "english", "french", "german", "italian", "spanish"}

func (l Language) String() string {
	if l < 0 || int(l) >= len(languageNames) {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageNames[l]
}

func (l *Language) UnmarshalText(text []byte) error {
	for i, name := range languageNames {
		if name == string(text) {
			*l = Language(i)
			return nil
		}
	}
	return fmt.Errorf("unknown language: %s", string(text))
}

func (l Language) MarshalText() ([]byte, error) {
	if l < 0 || int(l) >= len(languageNames) {
		return nil, fmt.Errorf("unknown language: %v", int(l))
	}
	return []byte(languageNames[l]), nil
}

var (
	ErrInit    = errors.New("could not initialize desmume")
	ErrClosed  = errors.New("emulator is closed")
	ErrOpenROM = errors.New("could not open rom")
)

type Emulator struct {
	lib *Library

	input     *Input
	savestate *Savestate
	movie     *Movie
	memory    *memory.Memory
	window    *Window
	display   *Display
}

// New initializes the emulator core of lib.
func New(lib *Library) (*Emulator, error) {
	lib.setSavetype(0)
	if lib.init() < 0 {
		return nil, ErrInit
	}

	e := &Emulator{
		lib:       lib,
		input:     &Input{lib: lib},
		savestate: &Savestate{lib: lib},
		movie:     &Movie{lib: lib},
		memory:    memory.New(&Memory{lib: lib}),
		display:   newDisplay(lib),
	}

	runtime.SetFinalizer(e, func(e *Emulator) {
		e.Close()
	})

	return e, nil
}

func (e *Emulator) Input() *Input {
	return e.input
}

func (e *Emulator) Savestate() *Savestate {
	return e.savestate
}

func (e *Emulator) Movie() *Movie {
	return e.movie
}

func (e *Emulator) Memory() *memory.Memory {
	return e.memory
}

func (e *Emulator) Display() *Display {
	return e.display
}

func (e *Emulator) SetLanguage(lang Language) {
	e.lib.setLanguage(uint8(lang))
}

// Open loads a ROM. If autoResume is set the emulation starts right away,
// otherwise it stays paused until Resume.
func (e *Emulator) Open(path string, autoResume bool) error {
	if e.lib == nil {
		return ErrClosed
	}
	if e.lib.open(path) < 0 {
		return fmt.Errorf("%w: %s", ErrOpenROM, path)
	}
	if autoResume {
		e.Resume(false)
	}
	return nil
}

// CloseROM unloads the current ROM. Opening another ROM does this already.
func (e *Emulator) CloseROM() {
	e.lib.closeROM()
}

// SetSaveType selects the backup memory type. 0 autodetects.
func (e *Emulator) SetSaveType(typ int) {
	e.lib.setSavetype(int32(typ))
}

func (e *Emulator) Pause() {
	e.lib.pause()
}

// Resume unpauses the emulator. The keypad is released unless keepKeypad is
// set.
func (e *Emulator) Resume(keepKeypad bool) {
	if !keepKeypad {
		e.input.KeypadUpdate(0)
	}
	e.lib.resume()
}

func (e *Emulator) Reset() {
	e.lib.reset()
}

func (e *Emulator) Running() bool {
	if e.lib == nil {
		return false
	}
	return e.lib.running() != 0
}

func (e *Emulator) SkipNextFrame() {
	e.lib.skipNext()
}

// Cycle runs one frame. withJoystick must be false unless joystick processing
// was initialized.
func (e *Emulator) Cycle(withJoystick bool) {
	e.lib.cycle(cbool(withJoystick))
}

func (e *Emulator) HasOpenGL() bool {
	return e.lib.hasOpenGL() != 0
}

func (e *Emulator) Ticks() int {
	return int(e.lib.sdlGetTicks())
}

func (e *Emulator) Volume() int {
	return int(e.lib.volumeGet())
}

// SetVolume sets the volume, between 0 and 100.
func (e *Emulator) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	} else if volume > 100 {
		volume = 100
	}
	e.lib.volumeSet(int32(volume))
}

// Close frees the core. Afterwards only Open, Running and Close may be
// called: Open reports ErrClosed and Running reports false.
func (e *Emulator) Close() {
	if e.lib == nil {
		return
	}
	e.memory.Watchpoints.Clear()
	e.lib.free()
	e.input.JoyUninit()
	if e.window != nil {
		e.window.Destroy()
	}
	e.lib = nil
}
