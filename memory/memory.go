package memory

import "golang.org/x/text/encoding"

// Memory groups every accessor over a single port.
type Memory struct {
	port  Port
	codec *Codec

	Unsigned *Accessor
	Signed   *Accessor

	ARM9 *Registers
	ARM7 *Registers

	Watchpoints *Watchpoints
	Strings     *StringReader
}

func New(port Port) *Memory {
	codec := NewCodec(port)
	return &Memory{
		port:  port,
		codec: codec,

		Unsigned: &Accessor{codec, false},
		Signed:   &Accessor{codec, true},

		ARM9: NewRegisters(port, PrefixARM9),
		ARM7: NewRegisters(port, PrefixARM7),

		Watchpoints: NewWatchpoints(port),
		Strings:     NewStringReader(port),
	}
}

func (m *Memory) Port() Port {
	return m.port
}

func (m *Memory) Codec() *Codec {
	return m.codec
}

func (m *Memory) Read(req Request) (Result, error) {
	return m.codec.Read(req)
}

func (m *Memory) Write(req Request, values []int64) error {
	return m.codec.Write(req, values)
}

func (m *Memory) Write8(address uint32, v uint8) {
	m.port.Write8(address, v)
}

func (m *Memory) Write16(address uint32, v uint16) {
	m.port.Write16(address, v)
}

func (m *Memory) Write32(address uint32, v uint32) {
	m.port.Write32(address, v)
}

func (m *Memory) ReadString(address uint32, enc encoding.Encoding) (string, error) {
	return m.Strings.ReadString(address, enc)
}

func (m *Memory) NextInstruction() (uint32, error) {
	ip, ok := m.port.(InstructionPort)
	if !ok {
		return 0, ErrNoInstruction
	}
	return ip.NextInstruction(), nil
}

func (m *Memory) SetNextInstruction(address uint32) error {
	ip, ok := m.port.(InstructionPort)
	if !ok {
		return ErrNoInstruction
	}
	ip.SetNextInstruction(address)
	return nil
}
