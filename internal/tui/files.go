package tui

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"wkbscope/internal/ewkb"
	"wkbscope/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".wkb" || ext == ".ewkb" || ext == ".bin" || ext == ".hex" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no geometry files in current directory"
	}
}

// loadPath decodes a binary or hex-encoded geometry file into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	raw, err := os.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("read failed")
		return
	}
	g, err := m.decode(raw)
	if err != nil {
		m.status = "decode error: " + err.Error()
		m.log.Error().Err(err).Str("path", p).Msg("decode failed")
		return
	}
	m.setGeometry(g, filepath.Base(p))
}

// decode accepts either raw (E)WKB bytes or their hex text form.
func (m *Model) decode(raw []byte) (ewkb.Geometry, error) {
	buf := raw
	if isHexText(raw) {
		b, err := hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
		if err != nil {
			return ewkb.Geometry{}, err
		}
		buf = b
	}
	d := ewkb.NewDecoder(buf)
	if m.opts.MaxDepth > 0 {
		d.MaxDepth = m.opts.MaxDepth
	}
	return d.Parse()
}

// setGeometry installs a decoded geometry and rebuilds the render layers.
func (m *Model) setGeometry(g ewkb.Geometry, label string) {
	d, err := geom.Flatten(g)
	if err != nil {
		m.status = "render error: " + err.Error()
		m.log.Error().Err(err).Str("source", label).Msg("flatten failed")
		return
	}
	m.decoded = &g
	m.data = d
	// prefer polys > lines > points for visibility
	m.showPolys = len(d.Polygons) > 0
	m.showLines = len(d.Lines) > 0 && !m.showPolys
	m.showPoints = len(d.Points) > 0 && !m.showPolys
	m.status = fmt.Sprintf("loaded: %s  %s%s  counts: pts=%d ls=%d poly=%d",
		label, g.Type, sridSuffix(g), len(d.Points), len(d.Lines), len(d.Polygons))
	m.log.Info().Str("source", label).Stringer("type", g.Type).Msg("geometry loaded")
	if m.showTree {
		m.refreshTree()
	}
}

func sridSuffix(g ewkb.Geometry) string {
	if g.SRID == nil {
		return ""
	}
	return fmt.Sprintf(" srid=%d", *g.SRID)
}

// isHexText reports whether the buffer is hex digits plus whitespace, the
// form PostGIS clients usually hand around.
func isHexText(raw []byte) bool {
	seen := false
	for _, b := range raw {
		switch {
		case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
			seen = true
		case b == ' ' || b == '\n' || b == '\r' || b == '\t':
		default:
			return false
		}
	}
	return seen
}
