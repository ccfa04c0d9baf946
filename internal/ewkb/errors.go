package ewkb

import "github.com/cockroachdb/errors"

// Decode failures. All of them abort the whole Parse call; there is no
// partial-result recovery. Match with errors.Is.
var (
	ErrInvalidByteOrder = errors.New("ewkb: invalid byte order marker")
	ErrUnsupportedType  = errors.New("ewkb: unsupported geometry type")
	ErrUnexpectedEOF    = errors.New("ewkb: unexpected end of input")
	ErrTooDeep          = errors.New("ewkb: geometry nesting too deep")
)
