package desmume

import (
	"image"
	"unsafe"
)

const (
	ScreenWidth         = 256
	ScreenHeight        = 192
	ScreenHeightBoth    = ScreenHeight * 2
	ScreenPixelSize     = ScreenWidth * ScreenHeight
	ScreenPixelSizeBoth = ScreenWidth * ScreenHeightBoth
	NumLayers           = 5
)

type Engine int

const (
	EngineMain Engine = iota
	EngineSub
)

type Display struct {
	lib  *Library
	rgbx []byte
}

func newDisplay(lib *Library) *Display {
	return &Display{lib: lib}
}

// Raw returns the core's framebuffer of both screens in its native 15-bit
// format. The slice aliases native memory and is only valid until the next
// Cycle.
func (d *Display) Raw() []uint16 {
	ptr := d.lib.drawRaw()
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*uint16)(ptr), ScreenPixelSizeBoth)
}

// BufferRGBX fills and returns a reused buffer with both screens as RGBX
// pixels, top screen first.
func (d *Display) BufferRGBX() []byte {
	if d.rgbx == nil {
		d.rgbx = make([]byte, ScreenPixelSizeBoth*4)
	}
	d.lib.drawRawRGBX(&d.rgbx[0])
	return d.rgbx
}

// Screenshot returns both screens stacked vertically.
func (d *Display) Screenshot() *image.RGBA {
	buf := make([]byte, ScreenPixelSizeBoth*3)
	d.lib.screenshot(&buf[0])
	return rgbToRGBA(buf, ScreenWidth, ScreenHeightBoth)
}

func rgbToRGBA(rgb []byte, width int, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i+2 < len(rgb) && j+3 < len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j+0] = rgb[i+0]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

func (d *Display) LayerEnabled(engine Engine, layer int) bool {
	if engine == EngineSub {
		return d.lib.gpuSubGet(int32(layer)) != 0
	}
	return d.lib.gpuMainGet(int32(layer)) != 0
}

func (d *Display) SetLayerEnabled(engine Engine, layer int, enabled bool) {
	if engine == EngineSub {
		d.lib.gpuSubSet(int32(layer), cbool(enabled))
		return
	}
	d.lib.gpuMainSet(int32(layer), cbool(enabled))
}
