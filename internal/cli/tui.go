package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graphtier/graphtier/pkg/geom"
	"github.com/graphtier/graphtier/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PositionListModel - Interactive layout inspection
// =============================================================================

// positionEntry is one row of the inspector: a node ID and its anchor.
type positionEntry struct {
	ID    string
	Point geom.Point
}

// PositionListModel is the bubbletea model for browsing computed positions.
type PositionListModel struct {
	Entries []positionEntry
	Bounds  geom.Rect
	Cursor  int
	Height  int
	Offset  int
}

// NewPositionListModel creates an inspector model from a layout result.
// Entries are sorted by node ID so browsing order is stable.
func NewPositionListModel(r *layout.Result) PositionListModel {
	entries := make([]positionEntry, 0, len(r.Positions))
	for id, p := range r.Positions {
		entries = append(entries, positionEntry{ID: id, Point: p})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	return PositionListModel{
		Entries: entries,
		Bounds:  r.Bounds,
		Height:  15,
	}
}

func (m PositionListModel) Init() tea.Cmd {
	return nil
}

func (m PositionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PositionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Node Positions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		line := fmt.Sprintf("%-24s x=%-8.1f y=%-8.1f", e.ID, e.Point.X, e.Point.Y)
		if i == m.Cursor {
			b.WriteString("▸ " + listSelectedStyle.Render(line))
		} else {
			b.WriteString("  " + listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("bounds %.0f x %.0f at (%.0f, %.0f)",
		m.Bounds.Width, m.Bounds.Height, m.Bounds.X, m.Bounds.Y)))
	b.WriteString("\n")

	return b.String()
}

// runPositionInspector opens the TUI for a computed layout and blocks until
// the user quits.
func runPositionInspector(r *layout.Result) error {
	if len(r.Positions) == 0 {
		printWarning("nothing to inspect: the layout has no positions")
		return nil
	}
	_, err := tea.NewProgram(NewPositionListModel(r)).Run()
	return err
}
