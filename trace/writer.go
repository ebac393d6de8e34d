package trace

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"
)

const flushEvery = 60

type Writer struct {
	closer  io.Closer
	w       *zstd.Encoder
	pending int
}

func writeHeader(w io.Writer, header string, version uint8) error {
	if _, err := w.Write([]byte(header)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, version)
}

// NewWriter starts a trace on w. Closing the Writer does not close w.
func NewWriter(w io.Writer, rom string) (*Writer, error) {
	return newWriter(w, nil, rom)
}

// Create starts a trace in a new file.
func Create(filename string, rom string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	tw, err := newWriter(f, f, rom)
	if err != nil {
		f.Close()
		return nil, err
	}
	return tw, nil
}

func newWriter(w io.Writer, closer io.Closer, rom string) (*Writer, error) {
	if len(rom) > math.MaxUint16 {
		return nil, errors.New("rom name too long")
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}

	if err := writeTraceHeader(zw, rom); err != nil {
		zw.Close()
		return nil, err
	}

	return &Writer{closer, zw, 0}, nil
}

func writeTraceHeader(zw *zstd.Encoder, rom string) error {
	if err := writeHeader(zw, traceHeader, traceVersion); err != nil {
		return err
	}

	if err := binary.Write(zw, binary.LittleEndian, uint16(len(rom))); err != nil {
		return err
	}

	if _, err := zw.Write([]byte(rom)); err != nil {
		return err
	}

	return zw.Flush()
}

func (tw *Writer) Write(ev Event) error {
	if err := binary.Write(tw.w, binary.LittleEndian, record{
		Frame:   ev.Frame,
		Kind:    uint8(ev.Kind),
		Address: ev.Address,
		Size:    ev.Size,
		Value:   ev.Value,
	}); err != nil {
		return err
	}

	tw.pending++
	if tw.pending < flushEvery {
		return nil
	}
	return tw.Flush()
}

func (tw *Writer) Flush() error {
	tw.pending = 0
	return tw.w.Flush()
}

func (tw *Writer) Close() error {
	if err := tw.w.Close(); err != nil {
		return err
	}
	if tw.closer == nil {
		return nil
	}
	if err := tw.closer.Close(); err != nil {
		return err
	}
	return nil
}
