package memory

import (
	"fmt"
	"sync"
)

type WatchKind int

const (
	WatchWrite WatchKind = iota
	WatchRead
	WatchExec

	numWatchKinds
)

func (k WatchKind) String() string {
	switch k {
	case WatchWrite:
		return "write"
	case WatchRead:
		return "read"
	case WatchExec:
		return "exec"
	default:
		return fmt.Sprintf("WatchKind(%d)", int(k))
	}
}

const (
	DefaultWriteSize = 1
	DefaultReadSize  = 1
	DefaultExecSize  = 2
)

func DefaultSize(kind WatchKind) int {
	if kind == WatchExec {
		return DefaultExecSize
	}
	if kind == WatchRead {
		return DefaultReadSize
	}
	return DefaultWriteSize
}

type watchKey struct {
	address uint32
	kind    WatchKind
}

type watch struct {
	size int
	hook Hook
}

// Watchpoints owns the hooks registered on a port. At most one hook exists per
// address and kind; the port only ever sees one trampoline per kind, which
// dispatches back into the table.
type Watchpoints struct {
	port Port

	mu          sync.Mutex
	watches     map[watchKey]watch
	trampolines [numWatchKinds]Hook
}

func NewWatchpoints(port Port) *Watchpoints {
	w := &Watchpoints{port: port, watches: map[watchKey]watch{}}
	for i := range w.trampolines {
		kind := WatchKind(i)
		w.trampolines[i] = func(address uint32, size int) {
			w.dispatch(kind, address, size)
		}
	}
	return w
}

// OnWrite calls hook whenever memory in [address, address+size) is written. A
// nil hook removes the watchpoint.
func (w *Watchpoints) OnWrite(address uint32, hook Hook, size int) {
	w.set(WatchWrite, address, hook, size)
}

func (w *Watchpoints) OnRead(address uint32, hook Hook, size int) {
	w.set(WatchRead, address, hook, size)
}

// OnExec calls hook whenever the instruction at address is executed. size
// should be left at DefaultExecSize.
func (w *Watchpoints) OnExec(address uint32, hook Hook, size int) {
	w.set(WatchExec, address, hook, size)
}

func (w *Watchpoints) Set(kind WatchKind, address uint32, hook Hook, size int) {
	w.set(kind, address, hook, size)
}

func (w *Watchpoints) set(kind WatchKind, address uint32, hook Hook, size int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := watchKey{address, kind}
	var trampoline Hook
	if hook == nil {
		delete(w.watches, key)
	} else {
		w.watches[key] = watch{size, hook}
		trampoline = w.trampolines[kind]
	}
	w.register(kind, address, size, trampoline)
}

func (w *Watchpoints) register(kind WatchKind, address uint32, size int, hook Hook) {
	switch kind {
	case WatchWrite:
		w.port.RegisterWrite(address, size, hook)
	case WatchRead:
		w.port.RegisterRead(address, size, hook)
	case WatchExec:
		w.port.RegisterExec(address, size, hook)
	}
}

func (w *Watchpoints) lookup(kind WatchKind, address uint32) Hook {
	w.mu.Lock()
	defer w.mu.Unlock()

	if wt, ok := w.watches[watchKey{address, kind}]; ok {
		return wt.hook
	}

	// The core may report an address inside a wider span.
	var hook Hook
	var best uint32
	for key, wt := range w.watches {
		if key.kind != kind || key.address > address {
			continue
		}
		if uint64(address) >= uint64(key.address)+uint64(wt.size) {
			continue
		}
		if hook == nil || key.address > best {
			hook = wt.hook
			best = key.address
		}
	}
	return hook
}

func (w *Watchpoints) dispatch(kind WatchKind, address uint32, size int) {
	// Hooks run without the lock held: they may read memory or re-register.
	if hook := w.lookup(kind, address); hook != nil {
		hook(address, size)
	}
}

func (w *Watchpoints) Registered(kind WatchKind, address uint32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.watches[watchKey{address, kind}]
	return ok
}

func (w *Watchpoints) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watches)
}

// Clear removes every registered watchpoint from the port.
func (w *Watchpoints) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for key, wt := range w.watches {
		w.register(key.kind, key.address, wt.size, nil)
		delete(w.watches, key)
	}
}
