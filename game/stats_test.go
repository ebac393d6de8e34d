package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimesEmpty(t *testing.T) {
	ft := newFrameTimes(4)

	assert.Equal(t, time.Duration(0), ft.Median())
	assert.Equal(t, float64(0), ft.FPS())
}

func TestFrameTimesMedian(t *testing.T) {
	ft := newFrameTimes(5)
	for _, d := range []time.Duration{30, 10, 50, 20, 40} {
		ft.Push(d * time.Millisecond)
	}

	assert.Equal(t, 30*time.Millisecond, ft.Median())
}

func TestFrameTimesDropsOldest(t *testing.T) {
	ft := newFrameTimes(3)
	for _, d := range []time.Duration{100, 100, 100, 10, 10, 10} {
		ft.Push(d * time.Millisecond)
	}

	assert.Equal(t, 10*time.Millisecond, ft.Median())
	assert.InDelta(t, 100.0, ft.FPS(), 0.001)
}
