package memory

import (
	"fmt"
	"strconv"
)

const (
	PrefixARM9 = "arm9."
	PrefixARM7 = "arm7."
)

// NumRegisters is the number of general purpose registers, r0 to r15.
const NumRegisters = 16

const (
	regSP = 13
	regLR = 14
	regPC = 15
)

// Registers is a view over the register file of one CPU, addressed by name
// through the port. Nothing is cached.
type Registers struct {
	port   Port
	prefix string
}

func NewRegisters(port Port, prefix string) *Registers {
	return &Registers{port, prefix}
}

func (r *Registers) Prefix() string {
	return r.prefix
}

func slotName(slot int) (string, error) {
	if slot < 0 || slot >= NumRegisters {
		return "", fmt.Errorf("%w: %d", ErrInvalidRegister, slot)
	}
	return "r" + strconv.Itoa(slot), nil
}

func (r *Registers) Get(slot int) (uint32, error) {
	name, err := slotName(slot)
	if err != nil {
		return 0, err
	}
	return r.Named(name), nil
}

func (r *Registers) Set(slot int, v uint32) error {
	name, err := slotName(slot)
	if err != nil {
		return err
	}
	r.SetNamed(name, v)
	return nil
}

func (r *Registers) Named(name string) uint32 {
	return r.port.ReadRegister(r.prefix + name)
}

func (r *Registers) SetNamed(name string, v uint32) {
	r.port.WriteRegister(r.prefix+name, v)
}

func (r *Registers) SP() uint32 {
	v, _ := r.Get(regSP)
	return v
}

// The fixed slots are always in range, so Set cannot fail for them.
func (r *Registers) SetSP(v uint32) {
	_ = r.Set(regSP, v)
}

func (r *Registers) LR() uint32 {
	v, _ := r.Get(regLR)
	return v
}

func (r *Registers) SetLR(v uint32) {
	_ = r.Set(regLR, v)
}

func (r *Registers) PC() uint32 {
	v, _ := r.Get(regPC)
	return v
}

func (r *Registers) SetPC(v uint32) {
	_ = r.Set(regPC, v)
}

func (r *Registers) CPSR() uint32 {
	return r.Named("cpsr")
}

func (r *Registers) SetCPSR(v uint32) {
	r.SetNamed("cpsr", v)
}

func (r *Registers) SPSR() uint32 {
	return r.Named("spsr")
}

func (r *Registers) SetSPSR(v uint32) {
	r.SetNamed("spsr", v)
}
