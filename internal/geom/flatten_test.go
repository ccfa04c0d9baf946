package geom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wkbscope/internal/ewkb"
)

func TestFlattenPoint(t *testing.T) {
	d, err := Flatten(ewkb.Geometry{Type: ewkb.TypePoint, Value: ewkb.Point{3, -4}})
	require.NoError(t, err)
	require.Equal(t, [][2]float64{{3, -4}}, d.Points)
	require.Empty(t, d.Lines)
	require.Empty(t, d.Polygons)
	require.Equal(t, BBox{MinX: 3, MinY: -4, MaxX: 3, MaxY: -4}, d.BBox)
}

func TestFlattenMultiLineString(t *testing.T) {
	g := ewkb.Geometry{
		Type: ewkb.TypeMultiLineString,
		Value: ewkb.MultiLineString{
			{{0, 0}, {1, 1}},
			{{-2, 3}, {4, -5}},
		},
	}
	d, err := Flatten(g)
	require.NoError(t, err)
	require.Len(t, d.Lines, 2)
	require.Equal(t, BBox{MinX: -2, MinY: -5, MaxX: 4, MaxY: 3}, d.BBox)
}

func TestFlattenPolygonRings(t *testing.T) {
	g := ewkb.Geometry{
		Type: ewkb.TypePolygon,
		Value: ewkb.Polygon{
			{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
			{{2, 2}, {4, 2}, {4, 4}, {2, 2}},
		},
	}
	d, err := Flatten(g)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	require.Len(t, d.Polygons[0], 2)
	require.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, d.BBox)
}

func TestFlattenCollectionRecurses(t *testing.T) {
	g := ewkb.Geometry{
		Type: ewkb.TypeGeometryCollection,
		Value: ewkb.Collection{
			{Type: ewkb.TypePoint, Value: ewkb.Point{1, 2}},
			{Type: ewkb.TypeLineString, Value: ewkb.LineString{{0, 0}, {5, 5}}},
			{Type: ewkb.TypeGeometryCollection, Value: ewkb.Collection{
				{Type: ewkb.TypePoint, Value: ewkb.Point{-1, -1}},
			}},
		},
	}
	d, err := Flatten(g)
	require.NoError(t, err)
	require.Len(t, d.Points, 2)
	require.Len(t, d.Lines, 1)
	require.Equal(t, BBox{MinX: -1, MinY: -1, MaxX: 5, MaxY: 5}, d.BBox)
}

func TestFlattenEmpty(t *testing.T) {
	_, err := Flatten(ewkb.Geometry{Type: ewkb.TypeGeometryCollection, Value: ewkb.Collection{}})
	require.Error(t, err)
}
