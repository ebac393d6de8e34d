package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/klauspost/compress/zstd"
	"github.com/murkland/desmume/memory"
)

const traceVersion = 0x01
const traceHeader = "DSWT"

type Event struct {
	Frame   uint32
	Kind    memory.WatchKind
	Address uint32
	Size    uint8
	Value   uint32
}

func (ev Event) String() string {
	return fmt.Sprintf("%d: %s %08x/%d = %0*x", ev.Frame, ev.Kind, ev.Address, ev.Size, int(ev.Size)*2, ev.Value)
}

type Trace struct {
	ROM    string
	Events []Event
}

type record struct {
	Frame   uint32
	Kind    uint8
	Address uint32
	Size    uint8
	Value   uint32
}

func readHeader(r io.Reader, header string, version uint8) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return err
	}

	if string(magic[:]) != header {
		return fmt.Errorf("invalid format")
	}

	var v uint8
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return err
	}
	if v != version {
		return fmt.Errorf("unsupported version: %02x vs %02x", v, version)
	}
	return nil
}

// Marshaled trace format is:
//
// header:
// u8[4]: DSWT
// u8: trace version
// u16: rom name size
// rom name size: rom name
//
// events:
// u32: frame
// u8: watch kind (0 = write, 1 = read, 2 = exec)
// u32: address
// u8: size
// u32: value
func Unmarshal(r io.Reader) (*Trace, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	if err := readHeader(zr, traceHeader, traceVersion); err != nil {
		return nil, err
	}

	var romSize uint16
	if err := binary.Read(zr, binary.LittleEndian, &romSize); err != nil {
		return nil, err
	}

	rom := make([]byte, int(romSize))
	if _, err := io.ReadFull(zr, rom); err != nil {
		return nil, err
	}

	var events []Event
	for {
		var rec record
		if err := binary.Read(zr, binary.LittleEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				log.Printf("trace was truncated")
				break
			}
			return nil, err
		}

		events = append(events, Event{
			Frame:   rec.Frame,
			Kind:    memory.WatchKind(rec.Kind),
			Address: rec.Address,
			Size:    rec.Size,
			Value:   rec.Value,
		})
	}

	return &Trace{
		ROM:    string(rom),
		Events: events,
	}, nil
}
