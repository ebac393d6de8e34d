package memory

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultCodec is used when ReadString is given a nil encoding.
var DefaultCodec encoding.Encoding = charmap.Windows1255

const stringChunk = 50

// StringReader reads zero-terminated strings one byte at a time.
type StringReader struct {
	port Port

	// MaxLen bounds the scan. Zero scans until a terminator is found, however
	// far away it is.
	MaxLen int
}

func NewStringReader(port Port) *StringReader {
	return &StringReader{port: port}
}

func (r *StringReader) scan(address uint32) ([]byte, error) {
	buf := make([]byte, 0, stringChunk)
	for i := uint32(0); ; i++ {
		b := r.port.Read8(address + i)
		if b == 0 {
			return buf, nil
		}
		if r.MaxLen > 0 && len(buf) >= r.MaxLen {
			return buf, fmt.Errorf("%w: no terminator within %d bytes of 0x%08x", ErrUnterminated, r.MaxLen, address)
		}
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), cap(buf)+stringChunk)
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, b)
	}
}

// ReadString decodes the bytes from address up to the first zero byte with enc.
// Bytes enc cannot decode are dropped.
func (r *StringReader) ReadString(address uint32, enc encoding.Encoding) (string, error) {
	raw, err := r.scan(address)
	if err != nil {
		return "", err
	}
	if enc == nil {
		enc = DefaultCodec
	}
	return decodeLossy(enc, raw), nil
}

// decodeLossy decodes raw with enc, dropping undecodable bytes. U+FFFD is
// kept where raw holds its own encoding of it.
func decodeLossy(enc encoding.Encoding, raw []byte) string {
	replacement, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil || len(replacement) == 0 {
		return decodeDropping(enc.NewDecoder(), raw)
	}

	parts := bytes.Split(raw, replacement)
	decoded := make([]string, len(parts))
	for i, part := range parts {
		decoded[i] = decodeDropping(enc.NewDecoder(), part)
	}
	return strings.Join(decoded, string(utf8.RuneError))
}

func decodeDropping(dec *encoding.Decoder, raw []byte) string {
	var sb strings.Builder
	dst := make([]byte, 4*len(raw)+utf8.UTFMax)
	for len(raw) > 0 {
		nDst, nSrc, err := dec.Transform(dst, raw, true)
		sb.Write(dst[:nDst])
		raw = raw[nSrc:]
		if err == nil {
			break
		}
		if nSrc == 0 && err != transform.ErrShortDst {
			raw = raw[1:]
			dec.Reset()
		} else if nSrc == 0 {
			dst = make([]byte, 2*len(dst))
		}
	}

	s := strings.ToValidUTF8(sb.String(), "")
	return strings.ReplaceAll(s, string(utf8.RuneError), "")
}
