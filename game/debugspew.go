package game

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/murkland/desmume/desmume"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const lineHeight = 10

var (
	debugFace text.Face
)

func init() {
	tt, err := opentype.Parse(fonts.PressStart2P_ttf)
	if err != nil {
		log.Fatal(err)
	}

	const dpi = 72
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    8,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	debugFace = text.NewGoXFace(face)
}

func (g *Game) keypadString() string {
	var names []string
	for k := desmume.KeyA; k <= desmume.KeyLid; k++ {
		if g.keys&desmume.Keymask(k) != 0 {
			names = append(names, g.p.Sprintf("KEY_"+strings.ToUpper(k.String())))
		}
	}
	return strings.Join(names, " ")
}

func drawLines(screen *ebiten.Image, lines []string, x float64, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.LineSpacing = lineHeight
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, strings.Join(lines, "\n"), debugFace, opts)
}

func (g *Game) spewDebug(screen *ebiten.Image) {
	mem := g.emu.Memory()
	lines := []string{
		fmt.Sprintf("emu fps: %.0f", g.frameTimes.FPS()),
		fmt.Sprintf("fps:     %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("skip:    %d (boost %t)", g.frameskip, g.boost),
		fmt.Sprintf("arm9 pc: %08x", mem.ARM9.PC()),
		fmt.Sprintf("arm7 pc: %08x", mem.ARM7.PC()),
		fmt.Sprintf("keys:    %s", g.keypadString()),
	}
	if status := g.movieStatus(); status != "" {
		lines = append(lines, fmt.Sprintf("movie:   %s", status))
	}
	if g.touching {
		lines = append(lines, fmt.Sprintf("touch:   %d,%d", g.touchX, g.touchY))
	}
	drawLines(screen, lines, 2, 2, color.RGBA{0xff, 0x00, 0xff, 0xff})
}

func (g *Game) drawOSD(screen *ebiten.Image) {
	drawLines(screen, []string{g.osd}, 2, float64(desmume.ScreenHeight-lineHeight-2), color.RGBA{0xff, 0xff, 0x00, 0xff})
}
