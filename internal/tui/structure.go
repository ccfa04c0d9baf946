package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"wkbscope/internal/ewkb"
)

// refreshTree rebuilds the structure table from the decoded geometry.
func (m *Model) refreshTree() {
	if m.decoded == nil {
		m.showTree = false
		m.status = "nothing decoded yet"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "kind", Width: 24},
		{Title: "srid", Width: 6},
		{Title: "detail", Width: 28},
	}
	var rows []table.Row
	appendTreeRows(&rows, *m.decoded, 0)
	// clear rows before swapping columns to avoid a transient mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// appendTreeRows walks the tagged tree; collection members get their own
// indented rows, Multi* payloads are summarized on the parent row.
func appendTreeRows(rows *[]table.Row, g ewkb.Geometry, depth int) {
	srid := ""
	if g.SRID != nil {
		srid = fmt.Sprintf("%d", *g.SRID)
	}
	kind := strings.Repeat("  ", depth) + g.Type.String()
	*rows = append(*rows, table.Row{fmt.Sprintf("%d", len(*rows)+1), kind, srid, payloadDetail(g.Value)})
	if col, ok := g.Value.(ewkb.Collection); ok {
		for _, el := range col {
			appendTreeRows(rows, el, depth+1)
		}
	}
}

func payloadDetail(v ewkb.Value) string {
	switch v := v.(type) {
	case ewkb.Point:
		return fmt.Sprintf("(%g, %g)", v[0], v[1])
	case ewkb.LineString:
		return fmt.Sprintf("%d vertices", len(v))
	case ewkb.Polygon:
		return fmt.Sprintf("%d rings", len(v))
	case ewkb.MultiPoint:
		return fmt.Sprintf("%d points", len(v))
	case ewkb.MultiLineString:
		return fmt.Sprintf("%d linestrings", len(v))
	case ewkb.MultiPolygon:
		return fmt.Sprintf("%d polygons", len(v))
	case ewkb.Collection:
		return fmt.Sprintf("%d members", len(v))
	}
	return ""
}
