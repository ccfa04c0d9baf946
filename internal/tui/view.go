package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" wkbscope ─ terminal (E)WKB inspector ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Map viewport
	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight
	m.mapW = max(8, mapWidth)
	m.mapH = max(4, mapHeight)

	var mapView string
	switch {
	case m.showTree:
		m.tbl.SetWidth(min(mapWidth-4, 68))
		m.tbl.SetHeight(min(mapHeight-2, m.opts.TreeHeight))
		box := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(m.mapW)
		m.ta.SetHeight(min(m.mapH, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(m.mapW, m.mapH))
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: status + help left, decoded summary right
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	summary := ""
	if m.decoded != nil {
		summary = dimStyle.Render("  " + m.decoded.Type.String() + sridSuffix(*m.decoded) + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(summary))
	right := lipgloss.Place(spacerW+lipgloss.Width(summary), 1, lipgloss.Right, lipgloss.Center, summary)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab files",
		"Enter open",
		"p paste hex",
		"t structure",
		"l layers",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
