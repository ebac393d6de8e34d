package desmume

// Window is the core's own SDL window. It handles drawing and touch input with
// the default keyboard configuration, which is enough for quick tests.
type Window struct {
	lib *Library
}

// CreateSDLWindow opens the SDL window, or returns the already open one.
func (e *Emulator) CreateSDLWindow(autoPause bool, useOpenGL bool) *Window {
	if e.window == nil {
		e.lib.windowInit(cbool(autoPause), cbool(useOpenGL))
		e.window = &Window{e.lib}
	}
	return e.window
}

func (w *Window) Draw() {
	w.lib.windowFrame()
}

func (w *Window) ProcessInput() {
	w.lib.windowInput()
}

func (w *Window) HasQuit() bool {
	return w.lib.windowQuit() != 0
}

func (w *Window) Destroy() {
	if w.lib == nil {
		return
	}
	w.lib.windowFree()
	w.lib = nil
}
