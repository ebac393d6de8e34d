// Package memory provides typed access to the memory, registers and memory
// hooks of a running emulator core.
package memory

// Hook is invoked by the core when a watched address is hit. address is the
// watched address and size the number of bytes of the access.
type Hook func(address uint32, size int)

// Port is the raw memory interface of an emulator core.
type Port interface {
	Read8(address uint32) uint8
	Read8Signed(address uint32) int8
	Read16(address uint32) uint16
	Read16Signed(address uint32) int16
	Read32(address uint32) uint32
	Read32Signed(address uint32) int32

	Write8(address uint32, v uint8)
	Write16(address uint32, v uint16)
	Write32(address uint32, v uint32)

	ReadRegister(name string) uint32
	WriteRegister(name string, v uint32)

	// A nil hook removes the watchpoint at address.
	RegisterWrite(address uint32, size int, hook Hook)
	RegisterRead(address uint32, size int, hook Hook)
	RegisterExec(address uint32, size int, hook Hook)
}

// InstructionPort is implemented by ports that expose the next instruction
// the ARM9 will execute.
type InstructionPort interface {
	NextInstruction() uint32
	SetNextInstruction(address uint32)
}
