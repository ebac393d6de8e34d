package desmume

import (
	"github.com/murkland/desmume/memory"
)

// Memory is the raw memory port of the emulator. It implements memory.Port and
// memory.InstructionPort.
type Memory struct {
	lib *Library
}

func (m *Memory) Read8(address uint32) uint8 {
	return m.lib.readByte(int32(address))
}

func (m *Memory) Read8Signed(address uint32) int8 {
	return m.lib.readByteSigned(int32(address))
}

func (m *Memory) Read16(address uint32) uint16 {
	return m.lib.readShort(int32(address))
}

func (m *Memory) Read16Signed(address uint32) int16 {
	return m.lib.readShortSigned(int32(address))
}

func (m *Memory) Read32(address uint32) uint32 {
	return m.lib.readLong(int32(address))
}

func (m *Memory) Read32Signed(address uint32) int32 {
	return m.lib.readLongSigned(int32(address))
}

func (m *Memory) Write8(address uint32, v uint8) {
	m.lib.writeByte(int32(address), v)
}

func (m *Memory) Write16(address uint32, v uint16) {
	m.lib.writeShort(int32(address), v)
}

func (m *Memory) Write32(address uint32, v uint32) {
	m.lib.writeLong(int32(address), v)
}

func (m *Memory) ReadRegister(name string) uint32 {
	return uint32(m.lib.readRegister(name))
}

func (m *Memory) WriteRegister(name string, v uint32) {
	m.lib.writeRegister(name, int32(v))
}

func (m *Memory) bindHook(kind memory.WatchKind, hook memory.Hook) uintptr {
	if hook == nil {
		return 0
	}
	nativeHooks.set(kind, hook)
	return hookTrampoline(kind)
}

// RegisterWrite installs hook for writes to [address, address+size). Hooks are
// dispatched per kind, so the most recently installed write hook receives all
// write events: use memory.Watchpoints to key hooks by address.
func (m *Memory) RegisterWrite(address uint32, size int, hook memory.Hook) {
	m.lib.registerWrite(int32(address), int32(size), m.bindHook(memory.WatchWrite, hook))
}

func (m *Memory) RegisterRead(address uint32, size int, hook memory.Hook) {
	m.lib.registerRead(int32(address), int32(size), m.bindHook(memory.WatchRead, hook))
}

func (m *Memory) RegisterExec(address uint32, size int, hook memory.Hook) {
	m.lib.registerExec(int32(address), int32(size), m.bindHook(memory.WatchExec, hook))
}

func (m *Memory) NextInstruction() uint32 {
	return m.lib.nextInstruction()
}

// SetNextInstruction changes the next instruction executed by the ARM9. The PC
// should usually be updated as well.
func (m *Memory) SetNextInstruction(address uint32) {
	m.lib.setNextInstr(address)
}

var (
	_ memory.Port            = (*Memory)(nil)
	_ memory.InstructionPort = (*Memory)(nil)
)
