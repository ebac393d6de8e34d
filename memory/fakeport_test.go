package memory

import "encoding/binary"

type fakePort struct {
	mem       map[uint32]byte
	registers map[string]uint32
	hooks     [numWatchKinds]map[uint32]Hook
	sizes     [numWatchKinds]map[uint32]int

	reads  int
	writes int
	nextPC uint32
}

func newFakePort() *fakePort {
	p := &fakePort{mem: map[uint32]byte{}, registers: map[string]uint32{}}
	for i := range p.hooks {
		p.hooks[i] = map[uint32]Hook{}
		p.sizes[i] = map[uint32]int{}
	}
	return p
}

func (p *fakePort) load(address uint32, data []byte) {
	for i, b := range data {
		p.mem[address+uint32(i)] = b
	}
}

func (p *fakePort) bytes(address uint32, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = p.mem[address+uint32(i)]
	}
	return buf
}

func (p *fakePort) calls() int {
	return p.reads + p.writes
}

func (p *fakePort) Read8(address uint32) uint8 {
	p.reads++
	return p.mem[address]
}

func (p *fakePort) Read8Signed(address uint32) int8 {
	return int8(p.Read8(address))
}

func (p *fakePort) Read16(address uint32) uint16 {
	p.reads++
	return binary.LittleEndian.Uint16(p.bytes(address, 2))
}

func (p *fakePort) Read16Signed(address uint32) int16 {
	return int16(p.Read16(address))
}

func (p *fakePort) Read32(address uint32) uint32 {
	p.reads++
	return binary.LittleEndian.Uint32(p.bytes(address, 4))
}

func (p *fakePort) Read32Signed(address uint32) int32 {
	return int32(p.Read32(address))
}

func (p *fakePort) Write8(address uint32, v uint8) {
	p.writes++
	p.mem[address] = v
}

func (p *fakePort) Write16(address uint32, v uint16) {
	p.writes++
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	p.load(address, buf[:])
}

func (p *fakePort) Write32(address uint32, v uint32) {
	p.writes++
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	p.load(address, buf[:])
}

func (p *fakePort) ReadRegister(name string) uint32 {
	p.reads++
	return p.registers[name]
}

func (p *fakePort) WriteRegister(name string, v uint32) {
	p.writes++
	p.registers[name] = v
}

func (p *fakePort) register(kind WatchKind, address uint32, size int, hook Hook) {
	if hook == nil {
		delete(p.hooks[kind], address)
		delete(p.sizes[kind], address)
		return
	}
	p.hooks[kind][address] = hook
	p.sizes[kind][address] = size
}

func (p *fakePort) RegisterWrite(address uint32, size int, hook Hook) {
	p.register(WatchWrite, address, size, hook)
}

func (p *fakePort) RegisterRead(address uint32, size int, hook Hook) {
	p.register(WatchRead, address, size, hook)
}

func (p *fakePort) RegisterExec(address uint32, size int, hook Hook) {
	p.register(WatchExec, address, size, hook)
}

// trigger behaves like the core: it calls whatever hook is installed for the
// registration address that covers address.
func (p *fakePort) trigger(kind WatchKind, registered uint32, address uint32, size int) bool {
	hook, ok := p.hooks[kind][registered]
	if !ok {
		return false
	}
	hook(address, size)
	return true
}

func (p *fakePort) NextInstruction() uint32 {
	return p.nextPC
}

func (p *fakePort) SetNextInstruction(address uint32) {
	p.nextPC = address
}
