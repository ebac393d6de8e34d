package memory

// Accessor reads memory with a fixed signedness. Writes ignore it: the bit
// pattern written is the same either way.
type Accessor struct {
	codec  *Codec
	signed bool
}

func (a *Accessor) Signed() bool {
	return a.signed
}

func (a *Accessor) At(address uint32) (int64, error) {
	return a.codec.ReadScalar(address, Byte, a.signed)
}

// Slice reads the bytes in [start, end).
func (a *Accessor) Slice(start uint32, end uint32) (Result, error) {
	return a.SliceStep(start, end, Byte)
}

// SliceStep reads [start, end) in units of size. Equal bounds read a single
// unit, like Codec.Read.
func (a *Accessor) SliceStep(start uint32, end uint32, size Size) (Result, error) {
	return a.codec.Read(Request{start, end, size, a.signed})
}

func (a *Accessor) Read8(address uint32) (int64, error) {
	return a.codec.ReadScalar(address, Byte, a.signed)
}

func (a *Accessor) Read16(address uint32) (int64, error) {
	return a.codec.ReadScalar(address, Short, a.signed)
}

func (a *Accessor) Read32(address uint32) (int64, error) {
	return a.codec.ReadScalar(address, Long, a.signed)
}

func (a *Accessor) Set(address uint32, v int64) error {
	return a.codec.Write(Scalar(address, Byte, a.signed), []int64{v})
}

func (a *Accessor) SetSlice(start uint32, end uint32, size Size, values []int64) error {
	return a.codec.Write(Request{start, end, size, a.signed}, values)
}
