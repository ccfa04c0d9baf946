package tui

import (
	"testing"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/require"

	"wkbscope/internal/ewkb"
)

func TestAppendTreeRows(t *testing.T) {
	srid := uint32(4326)
	g := ewkb.Geometry{
		Type: ewkb.TypeGeometryCollection,
		SRID: &srid,
		Value: ewkb.Collection{
			{Type: ewkb.TypePoint, Value: ewkb.Point{1.5, -2.25}},
			{Type: ewkb.TypeMultiPolygon, Value: ewkb.MultiPolygon{{}, {}}},
		},
	}

	var rows []table.Row
	appendTreeRows(&rows, g, 0)

	require.Len(t, rows, 3)
	require.Equal(t, table.Row{"1", "GEOMETRYCOLLECTION", "4326", "2 members"}, rows[0])
	require.Equal(t, table.Row{"2", "  POINT", "", "(1.5, -2.25)"}, rows[1])
	require.Equal(t, table.Row{"3", "  MULTIPOLYGON", "", "2 polygons"}, rows[2])
}

func TestIsHexText(t *testing.T) {
	require.True(t, isHexText([]byte("0101000000")))
	require.True(t, isHexText([]byte("  E610 0000\n")))
	require.False(t, isHexText([]byte{0x01, 0x01, 0x00, 0x00}))
	require.False(t, isHexText([]byte("not hex")))
	require.False(t, isHexText(nil))
}
