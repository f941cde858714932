package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PageListModel - Interactive page browser
// =============================================================================

// PageListModel is the bubbletea model for browsing pages in the
// navigation graph. Graph and Starts enable the enter-key path lookup;
// when nil, enter is a no-op.
type PageListModel struct {
	Rows   []pageRow
	Graph  *nav.Graph
	Starts nav.StartPages
	Cursor int
	Height int
	Offset int
	filter string
	path   []string // shortest path to cursor row, set on enter
}

// newPageListModel creates a page list model over the given rows.
func newPageListModel(rows []pageRow, g *nav.Graph, starts nav.StartPages) PageListModel {
	return PageListModel{
		Rows:   rows,
		Graph:  g,
		Starts: starts,
		Height: 15,
	}
}

func (m PageListModel) Init() tea.Cmd {
	return nil
}

func (m PageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
			m.path = nil
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
			m.path = nil
		case "enter":
			m.path = m.pathToSelected()
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.clampCursor()
			}
		default:
			if len(msg.String()) == 1 {
				m.filter += msg.String()
				m.clampCursor()
			}
		}
	}
	return m, nil
}

// visible returns rows matching the filter, case-insensitively.
func (m PageListModel) visible() []pageRow {
	if m.filter == "" {
		return m.Rows
	}
	needle := strings.ToLower(m.filter)
	var rows []pageRow
	for _, row := range m.Rows {
		if strings.Contains(strings.ToLower(row.Name), needle) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (m *PageListModel) clampCursor() {
	if n := len(m.visible()); m.Cursor >= n {
		m.Cursor = max(0, n-1)
	}
	m.Offset = 0
	m.path = nil
}

// pathToSelected returns the shortest path from the nearest start page
// to the cursor row, or nil when the graph is absent, no start reaches
// the page, or nothing is selected.
func (m PageListModel) pathToSelected() []string {
	visible := m.visible()
	if m.Graph == nil || m.Cursor >= len(visible) {
		return nil
	}
	target := visible[m.Cursor].Name

	best := nav.Unreachable
	var from string
	for _, page := range m.Starts {
		if d := m.Graph.Distance(page, target); d != nav.Unreachable && (best == nav.Unreachable || d < best) {
			best = d
			from = page
		}
	}
	if best == nav.Unreachable {
		return nil
	}
	return m.Graph.Path(from, target)
}

func (m PageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pages"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  type: filter  enter: show path  q: quit"))
	if m.filter != "" {
		b.WriteString(listDimStyle.Render("  filter: ") + StyleHighlight.Render(m.filter))
	}
	b.WriteString("\n\n")

	visible := m.visible()
	end := min(m.Offset+m.Height, len(visible))

	var rows [][]string
	for i := m.Offset; i < end; i++ {
		rows = append(rows, []string{
			visible[i].Name,
			visible[i].Role,
			fmt.Sprintf("%d", visible[i].Targets),
			formatDistance(visible[i]),
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("PAGE", "ROLE", "TARGETS", "DISTANCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))))
	if len(m.path) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  path: ") + StyleHighlight.Render(strings.Join(m.path, " -> ")))
	}

	return b.String()
}

func formatDistance(row pageRow) string {
	if !row.HasDist {
		return "-"
	}
	if row.Distance == nav.Unreachable {
		return "unreachable"
	}
	return fmt.Sprintf("%d", row.Distance)
}
