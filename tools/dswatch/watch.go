package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/murkland/desmume/memory"
)

type watchArg struct {
	kind    memory.WatchKind
	address uint32
	size    int
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseWatch parses "address[:size]" with a hex address. size defaults to
// the default for kind.
func parseWatch(kind memory.WatchKind, s string) (watchArg, error) {
	w := watchArg{kind: kind, size: memory.DefaultSize(kind)}

	addr, size, hasSize := strings.Cut(s, ":")
	address, err := parseUint32(addr)
	if err != nil {
		return watchArg{}, fmt.Errorf("bad %s watch address %q: %w", kind, addr, err)
	}
	w.address = address

	if hasSize {
		n, err := strconv.Atoi(size)
		if err != nil || n <= 0 {
			return watchArg{}, fmt.Errorf("bad %s watch size %q", kind, size)
		}
		w.size = n
	}

	return w, nil
}

// parseRange parses "start:end" with hex bounds, end exclusive.
func parseRange(s string) (uint32, uint32, error) {
	startStr, endStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad range %q: want start:end", s)
	}

	start, err := parseUint32(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range start %q: %w", startStr, err)
	}

	end, err := parseUint32(endStr)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range end %q: %w", endStr, err)
	}

	if end <= start {
		return 0, 0, fmt.Errorf("bad range %q: end must be after start", s)
	}

	return start, end, nil
}
