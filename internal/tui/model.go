package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wkbscope/internal/ewkb"
	"wkbscope/internal/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	opts Options
	log  zerolog.Logger

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Decoded geometry and its render layers
	decoded *ewkb.Geometry
	data    geom.Data

	// last rendered map size
	mapW int
	mapH int

	// paste mode (hex EWKB)
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// structure table
	showTree bool
	tbl      table.Model
}

func New(opts Options, log zerolog.Logger) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "wkbscope ready",
		opts:        opts,
		log:         log,
		showPoints:  opts.ShowPoints,
		showLines:   opts.ShowLines,
		showPolys:   opts.ShowPolys,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste hex-encoded (E)WKB here. Press Enter to decode; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// structure table setup (rows come from the decoded tree)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(opts.TreeHeight)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's geometry at launch.
func NewWithPath(opts Options, log zerolog.Logger, path string) Model {
	m := New(opts, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
