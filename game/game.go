package game

import (
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/murkland/desmume/av"
	"github.com/murkland/desmume/config"
	"github.com/murkland/desmume/desmume"
	"golang.org/x/text/message"
)

const boostFrameskip = 20

const osdDuration = 2 * time.Second

type Game struct {
	conf config.Config
	p    *message.Printer

	emu     *desmume.Emulator
	romPath string

	vb          *av.VideoBuffer
	topImage    *ebiten.Image
	bottomImage *ebiten.Image

	keys     desmume.Keys
	touching bool
	touchX   int
	touchY   int

	frameskip    int
	boost        bool
	fsFrameCount int

	muted     bool
	debugSpew bool

	osd      string
	osdUntil time.Time

	frameTimes *frameTimes
	lastCycle  time.Time
}

func New(conf config.Config, p *message.Printer, emu *desmume.Emulator, romPath string) (*Game, error) {
	emu.SetLanguage(conf.Emulator.Language)
	emu.SetSaveType(conf.Emulator.SaveType)
	emu.SetVolume(conf.Emulator.Volume)

	if conf.Joystick.Enabled {
		emu.Input().JoyInit()
		if err := emu.Input().ApplyJoystickConfig(conf.Joystick.Keys); err != nil {
			return nil, err
		}
	}

	if err := emu.Open(romPath, true); err != nil {
		return nil, err
	}
	emu.Savestate().Scan()

	if !conf.Emulator.FPSLimiter {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	return &Game{
		conf: conf,
		p:    p,

		emu:     emu,
		romPath: romPath,

		vb:          av.NewDSVideoBuffer(),
		topImage:    ebiten.NewImage(desmume.ScreenWidth, desmume.ScreenHeight),
		bottomImage: ebiten.NewImage(desmume.ScreenWidth, desmume.ScreenHeight),

		frameskip: conf.Emulator.Frameskip,

		frameTimes: newFrameTimes(60),
	}, nil
}

func (g *Game) Finish() {
	g.stopMovie()
	g.emu.Close()
}

func (g *Game) bottomTop() int {
	return desmume.ScreenHeight + g.conf.Display.Gap
}

func (g *Game) showOSD(s string) {
	log.Print(s)
	g.osd = s
	g.osdUntil = time.Now().Add(osdDuration)
}

func (g *Game) isPressed(key config.Key) bool {
	return ebiten.IsKeyPressed(ebiten.Key(key))
}

func (g *Game) isJustPressed(key config.Key) bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(key))
}

func (g *Game) handleHotkeys() {
	km := g.conf.Keymapping

	if g.isJustPressed(km.Pause) {
		if g.emu.Running() {
			g.emu.Pause()
			g.showOSD(g.p.Sprintf("PAUSED"))
		} else {
			g.emu.Resume(false)
			g.showOSD(g.p.Sprintf("RESUMED"))
		}
	}

	if g.isJustPressed(km.Reset) {
		g.emu.Reset()
		g.showOSD(g.p.Sprintf("RESET"))
	}

	if g.isJustPressed(km.Screenshot) {
		path, err := g.saveScreenshot()
		if err != nil {
			log.Printf("failed to save screenshot: %s", err)
		} else {
			g.showOSD(g.p.Sprintf("SCREENSHOT_SAVED", path))
		}
	}

	if g.isJustPressed(km.Mute) {
		g.muted = !g.muted
		if g.muted {
			g.emu.SetVolume(0)
			g.showOSD(g.p.Sprintf("MUTED"))
		} else {
			g.emu.SetVolume(g.conf.Emulator.Volume)
			g.showOSD(g.p.Sprintf("UNMUTED"))
		}
	}

	if g.isJustPressed(km.DebugSpew) {
		g.debugSpew = !g.debugSpew
	}

	if g.isJustPressed(km.Boost) {
		g.boost = !g.boost
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for slot, key := range slotKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if shift {
			g.emu.Savestate().Save(slot)
			g.showOSD(g.p.Sprintf("SAVED_SLOT", slot+1))
			continue
		}
		if !g.emu.Savestate().Exists(slot) {
			g.showOSD(g.p.Sprintf("EMPTY_SLOT", slot+1))
			continue
		}
		g.emu.Savestate().Load(slot)
		g.showOSD(g.p.Sprintf("LOADED_SLOT", slot+1, g.emu.Savestate().Date(slot)))
	}
}

func (g *Game) saveScreenshot() (string, error) {
	if err := os.MkdirAll("screenshots", 0o700); err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(g.romPath), filepath.Ext(g.romPath))
	path := filepath.Join("screenshots", fmt.Sprintf("%s-%s.png", name, time.Now().Format("20060102150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, g.emu.Display().Screenshot()); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Game) updateTouch() {
	x, y := ebiten.CursorPosition()
	top := g.bottomTop()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onTouchScreen(x, y, top) {
		g.touching = true
	}

	if !g.touching {
		return
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.touching = false
		g.emu.Input().TouchRelease()
		return
	}

	g.touchX, g.touchY = touchPos(x, y, top)
	g.emu.Input().TouchSetPos(g.touchX, g.touchY)
}

func (g *Game) cycle() {
	plan := cyclePlan(g.fsFrameCount, g.frameskip, g.boost)
	frames := len(plan)
	for _, skip := range plan {
		if skip {
			g.emu.SkipNextFrame()
		}
		g.fsFrameCount++

		g.emu.Cycle(g.conf.Joystick.Enabled)
	}
	drawn := !plan[frames-1]

	now := time.Now()
	if !g.lastCycle.IsZero() {
		g.frameTimes.Push(now.Sub(g.lastCycle) / time.Duration(frames))
	}
	g.lastCycle = now

	if !drawn {
		return
	}

	g.vb.Update(g.emu.Display().BufferRGBX())
	g.topImage.WritePixels(g.vb.Top().Pix)
	g.bottomImage.WritePixels(g.vb.Bottom().Pix)
}

func (g *Game) Update() error {
	g.handleHotkeys()

	if !g.emu.Running() {
		g.lastCycle = time.Time{}
		return nil
	}

	g.keys = keypadFromPressed(g.conf.Keymapping, inpututil.AppendPressedKeys(nil))
	g.emu.Input().KeypadUpdate(g.keys)
	g.updateTouch()
	g.cycle()

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return desmume.ScreenWidth, desmume.ScreenHeightBoth + g.conf.Display.Gap
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	screen.DrawImage(g.topImage, &ebiten.DrawImageOptions{})

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(0, float64(g.bottomTop()))
	screen.DrawImage(g.bottomImage, opts)

	if g.debugSpew {
		g.spewDebug(screen)
	}

	if g.osd != "" && time.Now().Before(g.osdUntil) {
		g.drawOSD(screen)
	}
}
