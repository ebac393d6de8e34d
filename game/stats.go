package game

import (
	"sync"
	"time"

	"github.com/keegancsmith/nth"
	"github.com/murkland/ringbuf"
	"golang.org/x/exp/constraints"
)

type orderableSlice[T constraints.Ordered] []T

func (s orderableSlice[T]) Len() int {
	return len(s)
}

func (s orderableSlice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (s orderableSlice[T]) Less(i, j int) bool {
	return s[i] < s[j]
}

// frameTimes keeps the durations of the most recent emulated frames.
type frameTimes struct {
	mu sync.RWMutex
	rb *ringbuf.RingBuf[time.Duration]
}

func newFrameTimes(n int) *frameTimes {
	return &frameTimes{rb: ringbuf.New[time.Duration](n)}
}

func (ft *frameTimes) Push(d time.Duration) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if ft.rb.Free() == 0 {
		ft.rb.Advance(1)
	}
	ft.rb.Push([]time.Duration{d})
}

func (ft *frameTimes) Median() time.Duration {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	if ft.rb.Used() == 0 {
		return 0
	}

	durations := make([]time.Duration, ft.rb.Used())
	ft.rb.Peek(durations, 0)

	i := len(durations) / 2
	nth.Element(orderableSlice[time.Duration](durations), i)
	return durations[i]
}

// FPS is the emulated frame rate implied by the median frame time.
func (ft *frameTimes) FPS() float64 {
	median := ft.Median()
	if median <= 0 {
		return 0
	}
	return float64(time.Second) / float64(median)
}
