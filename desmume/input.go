package desmume

import "errors"

type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeySelect
	KeyStart
	KeyRight
	KeyLeft
	KeyUp
	KeyDown
	KeyR
	KeyL
	KeyX
	KeyY
	KeyDebug
	KeyBoost
	KeyLid
)

const NumKeys = 15

// NoKeySet marks an unassigned joystick key.
const NoKeySet = 0xffff

var keyNames = [NumKeys]string{
	"A", "B", "Select", "Start",
	"Right", "Left", "Up", "Down",
	"R", "L", "X", "Y",
	"Debug", "Boost",
	"Lid",
}

func (k Key) String() string {
	if k <= KeyNone || int(k) > NumKeys {
		return "None"
	}
	return keyNames[k-1]
}

// Keys is a keypad mask of pressed keys.
type Keys uint16

func Keymask(k Key) Keys {
	if k <= KeyNone {
		return 0
	}
	return 1 << (k - 1)
}

func (ks Keys) Add(mask Keys) Keys {
	return ks | mask
}

func (ks Keys) Remove(mask Keys) Keys {
	return ks &^ mask
}

// DefaultJoystickConfig maps each key, starting at KeyA, to an SDL joystick
// code.
var DefaultJoystickConfig = [NumKeys]uint16{
	513, 512, 517, 520, 1, 0, 2, 3, 519, 518, 516, 515, NoKeySet, NoKeySet, 514,
}

var ErrJoystickNotInit = errors.New("joystick not initialized")

type Input struct {
	lib    *Library
	hasJoy bool
}

// JoyInit enables joystick processing during Cycle.
func (in *Input) JoyInit() {
	if in.hasJoy {
		return
	}
	in.lib.joyInit()
	in.hasJoy = true
}

func (in *Input) JoyUninit() {
	if !in.hasJoy {
		return
	}
	in.lib.joyUninit()
	in.hasJoy = false
}

func (in *Input) JoyNumberConnected() (int, error) {
	if !in.hasJoy {
		return 0, ErrJoystickNotInit
	}
	return int(in.lib.joyNumber()), nil
}

func (in *Input) JoyKey(index int) (uint16, error) {
	if !in.hasJoy {
		return 0, ErrJoystickNotInit
	}
	return in.lib.joyGetKey(int32(index)), nil
}

// JoyGetSetKey blocks until a joystick button is pressed and assigns it to
// key index.
func (in *Input) JoyGetSetKey(index int) (uint16, error) {
	if !in.hasJoy {
		return 0, ErrJoystickNotInit
	}
	return in.lib.joyGetSetKey(int32(index)), nil
}

func (in *Input) JoySetKey(index int, joyKey uint16) error {
	if !in.hasJoy {
		return ErrJoystickNotInit
	}
	in.lib.joySetKey(int32(index), int32(joyKey))
	return nil
}

func (in *Input) ApplyJoystickConfig(cfg [NumKeys]uint16) error {
	for i, joyKey := range cfg {
		if err := in.JoySetKey(i, joyKey); err != nil {
			return err
		}
	}
	return nil
}

func (in *Input) KeypadUpdate(keys Keys) {
	in.lib.keypadUpdate(uint16(keys))
}

func (in *Input) Keypad() Keys {
	return Keys(in.lib.keypadGet())
}

func (in *Input) KeypadAddKey(mask Keys) {
	in.KeypadUpdate(in.Keypad().Add(mask))
}

func (in *Input) KeypadRemoveKey(mask Keys) {
	in.KeypadUpdate(in.Keypad().Remove(mask))
}

func (in *Input) TouchSetPos(x int, y int) {
	in.lib.touchSetPos(uint16(x), uint16(y))
}

func (in *Input) TouchRelease() {
	in.lib.touchRelease()
}
