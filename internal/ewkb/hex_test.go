package ewkb

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
	geomewkb "github.com/twpayne/go-geom/encoding/ewkb"
)

func TestDecodeHex(t *testing.T) {
	src := geom.NewPointFlat(geom.XY, []float64{1.5, -2.25}).SetSRID(4326)
	raw, err := geomewkb.Marshal(src, binary.LittleEndian)
	require.NoError(t, err)
	s := hex.EncodeToString(raw)

	for _, in := range []string{s, strings.ToUpper(s)} {
		g, err := DecodeHex(in)
		require.NoError(t, err)
		require.Equal(t, TypePoint, g.Type)
		require.Equal(t, Point{1.5, -2.25}, g.Value)
		require.NotNil(t, g.SRID)
		require.Equal(t, uint32(4326), *g.SRID)
	}
}

func TestDecodeHexRejectsBadInput(t *testing.T) {
	_, err := DecodeHex("0101")
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = DecodeHex("01x")
	require.Error(t, err)

	// odd length
	_, err = DecodeHex("010")
	require.Error(t, err)
}
