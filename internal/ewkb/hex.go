package ewkb

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// DecodeHex decodes a hex-encoded EWKB value, the form PostGIS emits as text.
// Both upper and lower case digits are accepted.
func DecodeHex(s string) (Geometry, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "ewkb: decode hex")
	}
	return Parse(buf)
}
