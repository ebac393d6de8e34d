package desmume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"
)

// Library is a loaded libdesmume. The library keeps global state, so a process
// should only ever drive one emulator with it.
type Library struct {
	handle uintptr
	path   string

	init         func() int32
	free         func()
	setLanguage  func(lang uint8)
	open         func(filename string) int32
	setSavetype  func(typ int32)
	pause        func()
	resume       func()
	reset        func()
	running      func() int32
	skipNext     func()
	cycle        func(withJoystick int32)
	hasOpenGL    func() int32
	sdlGetTicks  func() int32
	closeROM     func()
	volumeGet    func() int32
	volumeSet    func(volume int32)
	drawRaw      func() unsafe.Pointer
	drawRawRGBX  func(buf *byte)
	screenshot   func(buf *byte)
	gpuMainGet   func(layer int32) int32
	gpuSubGet    func(layer int32) int32
	gpuMainSet   func(layer int32, state int32)
	gpuSubSet    func(layer int32, state int32)
	windowInit   func(autoPause int32, useOpenGL int32)
	windowFree   func()
	windowFrame  func()
	windowInput  func()
	windowQuit   func() int32
	joyInit      func() int32
	joyUninit    func()
	joyNumber    func() uint16
	joyGetKey    func(index int32) uint16
	joyGetSetKey func(index int32) uint16
	joySetKey    func(index int32, joyKey int32)
	keypadUpdate func(keys uint16)
	keypadGet    func() uint16
	touchSetPos  func(x uint16, y uint16)
	touchRelease func()

	stateLoad       func(filename string) int32
	stateSave       func(filename string) int32
	stateScan       func()
	stateSlotLoad   func(index int32)
	stateSlotSave   func(index int32)
	stateSlotExists func(index int32) int32
	stateSlotDate   func(index int32) string

	moviePlay        func(filename string) string
	movieRecord      func(filename string, author string, startFrom int32, sram string)
	movieStop        func()
	movieActive      func() int32
	movieRecording   func() int32
	moviePlaying     func() int32
	movieFinished    func() int32
	movieLength      func() int32
	movieName        func() string
	movieRerecords   func() int32
	movieSetRerecord func(count int32)
	movieReadOnly    func() int32
	movieSetReadOnly func(state int32)

	readByte        func(address int32) uint8
	readByteSigned  func(address int32) int8
	readShort       func(address int32) uint16
	readShortSigned func(address int32) int16
	readLong        func(address int32) uint32
	readLongSigned  func(address int32) int32
	writeByte       func(address int32, v uint8)
	writeShort      func(address int32, v uint16)
	writeLong       func(address int32, v uint32)
	readRegister    func(name string) int32
	writeRegister   func(name string, v int32)
	registerWrite   func(address int32, size int32, cb uintptr)
	registerRead    func(address int32, size int32, cb uintptr)
	registerExec    func(address int32, size int32, cb uintptr)
	nextInstruction func() uint32
	setNextInstr    func(address uint32)
}

var ErrLibraryNotFound = errors.New("could not find libdesmume")

func libraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "libdesmume.dll"
	case "darwin":
		return "libdesmume.dylib"
	default:
		return "libdesmume.so"
	}
}

// Load opens libdesmume at path. An empty path tries the platform library name
// through the loader search path and then next to the executable.
func Load(path string) (*Library, error) {
	if path != "" {
		return loadFrom(path)
	}

	candidates := []string{libraryName()}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, libraryName()))
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), libraryName()))
	}

	var errs []string
	for _, candidate := range candidates {
		lib, err := loadFrom(candidate)
		if err == nil {
			return lib, nil
		}
		errs = append(errs, err.Error())
	}
	return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, errs)
}

func loadFrom(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}

	lib := &Library{handle: handle, path: path}
	if err := lib.bind(); err != nil {
		closeLibrary(handle)
		return nil, err
	}
	return lib, nil
}

func (l *Library) Path() string {
	return l.path
}

func (l *Library) symbols() map[string]interface{} {
	return map[string]interface{}{
		"desmume_init":                            &l.init,
		"desmume_free":                            &l.free,
		"desmume_set_language":                    &l.setLanguage,
		"desmume_open":                            &l.open,
		"desmume_set_savetype":                    &l.setSavetype,
		"desmume_pause":                           &l.pause,
		"desmume_resume":                          &l.resume,
		"desmume_reset":                           &l.reset,
		"desmume_running":                         &l.running,
		"desmume_skip_next_frame":                 &l.skipNext,
		"desmume_cycle":                           &l.cycle,
		"desmume_has_opengl":                      &l.hasOpenGL,
		"desmume_sdl_get_ticks":                   &l.sdlGetTicks,
		"desmume_close":                           &l.closeROM,
		"desmume_volume_get":                      &l.volumeGet,
		"desmume_volume_set":                      &l.volumeSet,
		"desmume_draw_raw":                        &l.drawRaw,
		"desmume_draw_raw_as_rgbx":                &l.drawRawRGBX,
		"desmume_screenshot":                      &l.screenshot,
		"desmume_gpu_get_layer_main_enable_state": &l.gpuMainGet,
		"desmume_gpu_get_layer_sub_enable_state":  &l.gpuSubGet,
		"desmume_gpu_set_layer_main_enable_state": &l.gpuMainSet,
		"desmume_gpu_set_layer_sub_enable_state":  &l.gpuSubSet,
		"desmume_draw_window_init":                &l.windowInit,
		"desmume_draw_window_free":                &l.windowFree,
		"desmume_draw_window_frame":               &l.windowFrame,
		"desmume_draw_window_input":               &l.windowInput,
		"desmume_draw_window_has_quit":            &l.windowQuit,
		"desmume_input_joy_init":                  &l.joyInit,
		"desmume_input_joy_uninit":                &l.joyUninit,
		"desmume_input_joy_number_connected":      &l.joyNumber,
		"desmume_input_joy_get_key":               &l.joyGetKey,
		"desmume_input_joy_get_set_key":           &l.joyGetSetKey,
		"desmume_input_joy_set_key":               &l.joySetKey,
		"desmume_input_keypad_update":             &l.keypadUpdate,
		"desmume_input_keypad_get":                &l.keypadGet,
		"desmume_input_set_touch_pos":             &l.touchSetPos,
		"desmume_input_release_touch":             &l.touchRelease,

		"desmume_savestate_load":        &l.stateLoad,
		"desmume_savestate_save":        &l.stateSave,
		"desmume_savestate_scan":        &l.stateScan,
		"desmume_savestate_slot_load":   &l.stateSlotLoad,
		"desmume_savestate_slot_save":   &l.stateSlotSave,
		"desmume_savestate_slot_exists": &l.stateSlotExists,
		"desmume_savestate_slot_date":   &l.stateSlotDate,

		"desmume_movie_play":               &l.moviePlay,
		"desmume_movie_record":             &l.movieRecord,
		"desmume_movie_stop":               &l.movieStop,
		"desmume_movie_is_active":          &l.movieActive,
		"desmume_movie_is_recording":       &l.movieRecording,
		"desmume_movie_is_playing":         &l.moviePlaying,
		"desmume_movie_is_finished":        &l.movieFinished,
		"desmume_movie_get_length":         &l.movieLength,
		"desmume_movie_get_name":           &l.movieName,
		"desmume_movie_get_rerecord_count": &l.movieRerecords,
		"desmume_movie_set_rerecord_count": &l.movieSetRerecord,
		"desmume_movie_get_readonly":       &l.movieReadOnly,
		"desmume_movie_set_readonly":       &l.movieSetReadOnly,

		"desmume_memory_read_byte":            &l.readByte,
		"desmume_memory_read_byte_signed":     &l.readByteSigned,
		"desmume_memory_read_short":           &l.readShort,
		"desmume_memory_read_short_signed":    &l.readShortSigned,
		"desmume_memory_read_long":            &l.readLong,
		"desmume_memory_read_long_signed":     &l.readLongSigned,
		"desmume_memory_write_byte":           &l.writeByte,
		"desmume_memory_write_short":          &l.writeShort,
		"desmume_memory_write_long":           &l.writeLong,
		"desmume_memory_read_register":        &l.readRegister,
		"desmume_memory_write_register":       &l.writeRegister,
		"desmume_memory_register_write":       &l.registerWrite,
		"desmume_memory_register_read":        &l.registerRead,
		"desmume_memory_register_exec":        &l.registerExec,
		"desmume_memory_get_next_instruction": &l.nextInstruction,
		"desmume_memory_set_next_instruction": &l.setNextInstr,
	}
}

func (l *Library) bind() error {
	for name, fptr := range l.symbols() {
		sym, err := lookupSymbol(l.handle, name)
		if err != nil {
			return fmt.Errorf("could not resolve %s in %s: %w", name, l.path, err)
		}
		registerFunc(fptr, sym)
	}
	return nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}

func cbool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
