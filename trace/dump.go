package trace

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

const dumpVersion = 0x01
const dumpHeader = "DSMD"

// Dump is a snapshot of a contiguous memory range.
type Dump struct {
	Start uint32
	Data  []byte
}

// Marshaled dump format is:
//
// u8[4]: DSMD
// u8: dump version
// u32: start address
// u32: data size
// data size: data
func WriteDump(w io.Writer, dump Dump) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	if err := writeDumpBody(zw, dump); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

func writeDumpBody(zw *zstd.Encoder, dump Dump) error {
	if err := writeHeader(zw, dumpHeader, dumpVersion); err != nil {
		return err
	}

	if err := binary.Write(zw, binary.LittleEndian, dump.Start); err != nil {
		return err
	}

	if err := binary.Write(zw, binary.LittleEndian, uint32(len(dump.Data))); err != nil {
		return err
	}

	_, err := zw.Write(dump.Data)
	return err
}

func ReadDump(r io.Reader) (*Dump, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	if err := readHeader(zr, dumpHeader, dumpVersion); err != nil {
		return nil, err
	}

	var start uint32
	if err := binary.Read(zr, binary.LittleEndian, &start); err != nil {
		return nil, err
	}

	var size uint32
	if err := binary.Read(zr, binary.LittleEndian, &size); err != nil {
		return nil, err
	}

	// size is not trusted until the data is there.
	data, err := io.ReadAll(io.LimitReader(zr, int64(size)))
	if err != nil {
		return nil, err
	}
	if len(data) != int(size) {
		return nil, io.ErrUnexpectedEOF
	}

	return &Dump{start, data}, nil
}
