package desmume

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/murkland/desmume/memory"
)

// The native memory callbacks carry no user data, so hooks are tracked per
// watch kind for the whole process. memory.Watchpoints installs a single
// dispatching hook per kind, which is what makes this enough.
type hookTable struct {
	mu    sync.RWMutex
	hooks [3]memory.Hook
}

func (t *hookTable) set(kind memory.WatchKind, hook memory.Hook) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks[kind] = hook
}

func (t *hookTable) call(kind memory.WatchKind, address uint32, size int) {
	t.mu.RLock()
	hook := t.hooks[kind]
	t.mu.RUnlock()
	if hook != nil {
		hook(address, size)
	}
}

var nativeHooks hookTable

var (
	trampolinesOnce sync.Once
	trampolines     [3]uintptr
)

// purego callbacks are never freed, so exactly one is made per kind.
func hookTrampoline(kind memory.WatchKind) uintptr {
	trampolinesOnce.Do(func() {
		for i := range trampolines {
			kind := memory.WatchKind(i)
			trampolines[i] = purego.NewCallback(func(address uintptr, size uintptr) uintptr {
				nativeHooks.call(kind, uint32(address), int(int32(size)))
				return 0
			})
		}
	})
	return trampolines[kind]
}
