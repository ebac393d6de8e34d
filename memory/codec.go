package memory

import "fmt"

// Size is the width of a single memory access in bytes.
type Size int

const (
	Byte  Size = 1
	Short Size = 2
	Long  Size = 4
)

func (s Size) Valid() bool {
	return s == Byte || s == Short || s == Long
}

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

func checkSize(s Size) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSize, int(s))
	}
	return nil
}

// Request describes a memory access. When Start == End the request denotes a
// single unit at Start, otherwise the half-open range [Start, End) stepped by
// Size.
type Request struct {
	Start  uint32
	End    uint32
	Size   Size
	Signed bool
}

func Scalar(address uint32, size Size, signed bool) Request {
	return Request{address, address, size, signed}
}

func Range(start uint32, end uint32, size Size, signed bool) Request {
	return Request{start, end, size, signed}
}

func (r Request) IsScalar() bool {
	return r.Start == r.End
}

// steps returns how many units the range visits. Scalar requests count as
// one unit.
func (r Request) steps() int {
	end := uint64(r.End)
	if r.IsScalar() {
		end = uint64(r.Start) + 1
	}
	if end <= uint64(r.Start) {
		return 0
	}
	return int((end - uint64(r.Start) + uint64(r.Size) - 1) / uint64(r.Size))
}

func (r Request) address(i int) uint32 {
	return r.Start + uint32(i)*uint32(r.Size)
}

type ResultKind int

const (
	ResultScalar ResultKind = iota
	ResultBytes
	ResultValues
)

// Result is the decoded outcome of a read: a scalar, a raw byte block (only for
// unsigned byte ranges) or a sequence of integers.
type Result struct {
	kind   ResultKind
	scalar int64
	bytes  []byte
	values []int64
}

func (r Result) Kind() ResultKind {
	return r.kind
}

func (r Result) Scalar() int64 {
	return r.scalar
}

func (r Result) Bytes() []byte {
	return r.bytes
}

func (r Result) Values() []int64 {
	return r.values
}

func (r Result) Len() int {
	switch r.kind {
	case ResultScalar:
		return 1
	case ResultBytes:
		return len(r.bytes)
	default:
		return len(r.values)
	}
}

// Codec translates requests into unit reads and writes against a Port.
type Codec struct {
	port Port
}

func NewCodec(port Port) *Codec {
	return &Codec{port}
}

func (c *Codec) readUnit(address uint32, size Size, signed bool) int64 {
	if signed {
		switch size {
		case Byte:
			return int64(c.port.Read8Signed(address))
		case Short:
			return int64(c.port.Read16Signed(address))
		default:
			return int64(c.port.Read32Signed(address))
		}
	}
	switch size {
	case Byte:
		return int64(c.port.Read8(address))
	case Short:
		return int64(c.port.Read16(address))
	default:
		return int64(c.port.Read32(address))
	}
}

func (c *Codec) writeUnit(address uint32, size Size, v int64) {
	switch size {
	case Byte:
		c.port.Write8(address, uint8(v))
	case Short:
		c.port.Write16(address, uint16(v))
	default:
		c.port.Write32(address, uint32(v))
	}
}

// Read performs req. Equal bounds read one scalar; anything else reads a range.
func (c *Codec) Read(req Request) (Result, error) {
	if req.IsScalar() {
		v, err := c.ReadScalar(req.Start, req.Size, req.Signed)
		if err != nil {
			return Result{}, err
		}
		return Result{kind: ResultScalar, scalar: v}, nil
	}
	return c.ReadRange(req.Start, req.End, req.Size, req.Signed)
}

func (c *Codec) ReadScalar(address uint32, size Size, signed bool) (int64, error) {
	if err := checkSize(size); err != nil {
		return 0, err
	}
	return c.readUnit(address, size, signed), nil
}

// ReadRange reads [start, end) in steps of size. end <= start yields an empty
// result.
func (c *Codec) ReadRange(start uint32, end uint32, size Size, signed bool) (Result, error) {
	if err := checkSize(size); err != nil {
		return Result{}, err
	}

	if end <= start {
		if !signed && size == Byte {
			return Result{kind: ResultBytes, bytes: []byte{}}, nil
		}
		return Result{kind: ResultValues, values: []int64{}}, nil
	}
	req := Request{start, end, size, signed}
	n := req.steps()

	if !signed && size == Byte {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = c.port.Read8(req.address(i))
		}
		return Result{kind: ResultBytes, bytes: buf}, nil
	}

	values := make([]int64, n)
	for i := range values {
		values[i] = c.readUnit(req.address(i), size, signed)
	}
	return Result{kind: ResultValues, values: values}, nil
}

// Write stores values over req using the unsigned unit writes. Equal bounds
// write exactly one unit. Nothing is written if values is too short.
func (c *Codec) Write(req Request, values []int64) error {
	if err := checkSize(req.Size); err != nil {
		return err
	}

	n := req.steps()
	if len(values) < n {
		return fmt.Errorf("%w: need %d, got %d", ErrShortValues, n, len(values))
	}

	for i := 0; i < n; i++ {
		c.writeUnit(req.address(i), req.Size, values[i])
	}
	return nil
}

func (c *Codec) WriteScalar(address uint32, size Size, v int64) error {
	return c.Write(Scalar(address, size, false), []int64{v})
}

func (c *Codec) WriteBytes(start uint32, data []byte) {
	for i, b := range data {
		c.port.Write8(start+uint32(i), b)
	}
}
