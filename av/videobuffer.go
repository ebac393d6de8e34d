package av

import (
	"image"

	"github.com/murkland/desmume/desmume"
)

// VideoBuffer splits the core's stacked RGBX framebuffer into one image per
// screen.
type VideoBuffer struct {
	width  int
	height int
	top    *image.RGBA
	bottom *image.RGBA
}

func NewVideoBuffer(width int, height int) *VideoBuffer {
	return &VideoBuffer{
		width:  width,
		height: height,
		top:    image.NewRGBA(image.Rect(0, 0, width, height)),
		bottom: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

func NewDSVideoBuffer() *VideoBuffer {
	return NewVideoBuffer(desmume.ScreenWidth, desmume.ScreenHeight)
}

func (vb *VideoBuffer) Top() *image.RGBA {
	return vb.top
}

func (vb *VideoBuffer) Bottom() *image.RGBA {
	return vb.bottom
}

// Update copies buf into both screens. The X byte of every pixel is replaced
// with an opaque alpha. Short buffers leave the remaining pixels untouched.
func (vb *VideoBuffer) Update(buf []byte) {
	n := vb.width * vb.height * 4
	copyOpaque(vb.top.Pix, buf)
	if len(buf) > n {
		copyOpaque(vb.bottom.Pix, buf[n:])
	}
}

func copyOpaque(dst []byte, src []byte) {
	n := copy(dst, src)
	for i := 3; i < n; i += 4 {
		dst[i] = 0xff
	}
}
