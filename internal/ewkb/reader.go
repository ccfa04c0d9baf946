package ewkb

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// (E)WKB byte order markers.
const (
	markerBigEndian    = 0x00
	markerLittleEndian = 0x01
)

// Reader decodes fixed-width primitives from an in-memory buffer. Multi-byte
// reads honor the byte order selected by the most recent ReadByteOrder call;
// the cursor only moves forward.
type Reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

func NewReader(buf []byte) *Reader {
	// XDR default until the first marker is read
	return &Reader{buf: buf, order: binary.BigEndian}
}

// Remaining reports how many bytes are left past the cursor.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes at offset %d, have %d", n, r.pos, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadByteOrder consumes one marker byte and switches the reader's endianness
// for every following multi-byte read, until the next marker.
func (r *Reader) ReadByteOrder() (binary.ByteOrder, error) {
	b, err := r.take(1)
	if err != nil {
		return nil, err
	}
	switch b[0] {
	case markerLittleEndian:
		r.order = binary.LittleEndian
	case markerBigEndian:
		r.order = binary.BigEndian
	default:
		return nil, errors.Wrapf(ErrInvalidByteOrder, "marker 0x%02x at offset %d", b[0], r.pos-1)
	}
	return r.order, nil
}

// ReadUint32 reads 4 bytes in the current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadFloat64 reads an 8-byte IEEE-754 double in the current byte order.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(b)), nil
}
