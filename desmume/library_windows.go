//go:build windows

package desmume

import (
	"path/filepath"
	"syscall"
	"unsafe"

	"github.com/ebitengine/purego"
)

func openLibrary(path string) (uintptr, error) {
	if dir := filepath.Dir(path); dir != "." {
		// Let the loader find the SDL dlls shipped next to libdesmume.
		if abs, err := filepath.Abs(dir); err == nil {
			setDllDirectory(abs)
		}
	}
	h, err := syscall.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func setDllDirectory(dir string) {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	p, err := syscall.UTF16PtrFromString(dir)
	if err != nil {
		return
	}
	kernel32.NewProc("SetDllDirectoryW").Call(uintptr(unsafe.Pointer(p)))
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return syscall.GetProcAddress(syscall.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(handle))
}

func registerFunc(fptr interface{}, sym uintptr) {
	purego.RegisterFunc(fptr, sym)
}
