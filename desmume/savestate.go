package desmume

import (
	"fmt"
)

const NumSlots = 10

type Savestate struct {
	lib *Library
}

// Scan refreshes which slots exist. It must be called before Exists.
func (s *Savestate) Scan() {
	s.lib.stateScan()
}

func (s *Savestate) Exists(slot int) bool {
	return s.lib.stateSlotExists(int32(slot)) != 0
}

func (s *Savestate) Load(slot int) {
	s.lib.stateSlotLoad(int32(slot))
}

func (s *Savestate) Save(slot int) {
	s.lib.stateSlotSave(int32(slot))
}

func (s *Savestate) LoadFile(path string) error {
	if s.lib.stateLoad(path) == 0 {
		return fmt.Errorf("could not load savestate %s", path)
	}
	return nil
}

func (s *Savestate) SaveFile(path string) error {
	if s.lib.stateSave(path) == 0 {
		return fmt.Errorf("could not save savestate %s", path)
	}
	return nil
}

// Date returns when the slot was saved, formatted by the core.
func (s *Savestate) Date(slot int) string {
	return s.lib.stateSlotDate(int32(slot))
}
