package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/murkland/desmume/config"
	"github.com/murkland/desmume/desmume"
)

// keypadFromPressed builds the keypad mask for the pressed keyboard keys.
// Boost toggles fast forward and never reaches the keypad.
func keypadFromPressed(km config.Keymapping, pressed []ebiten.Key) desmume.Keys {
	var keys desmume.Keys
	for dsKey, key := range km.DSKeys() {
		if dsKey == desmume.KeyBoost {
			continue
		}
		for _, p := range pressed {
			if p == ebiten.Key(key) {
				keys = keys.Add(desmume.Keymask(dsKey))
			}
		}
	}
	return keys
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// touchPos maps a layout position to touch screen coordinates. top is the
// layout row where the bottom screen starts.
func touchPos(x int, y int, top int) (int, int) {
	return clamp(x, 0, desmume.ScreenWidth-1), clamp(y-top, 0, desmume.ScreenHeight-1)
}

func onTouchScreen(x int, y int, top int) bool {
	return x >= 0 && x < desmume.ScreenWidth && y >= top && y < top+desmume.ScreenHeight
}

var slotKeys = [desmume.NumSlots]ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5,
	ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10,
}

// shouldSkip reports whether the frame numbered count is skipped under
// frameskip. Only every (frameskip+1)th frame is rendered.
func shouldSkip(count int, frameskip int) bool {
	return frameskip > 0 && count%(frameskip+1) != 0
}

// cyclePlan reports, for each frame run in one tick, whether it is skipped.
// A boosted tick runs boostFrameskip+1 frames and always renders the last.
func cyclePlan(count int, frameskip int, boost bool) []bool {
	if !boost {
		return []bool{shouldSkip(count, frameskip)}
	}
	plan := make([]bool, boostFrameskip+1)
	for i := range plan[:boostFrameskip] {
		plan[i] = true
	}
	return plan
}
