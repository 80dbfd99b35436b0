package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// targetListModel is the bubbletea model for interactive target selection.
type targetListModel struct {
	Labels   []string
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// newTargetListModel creates a new target list model.
func newTargetListModel(labels []string) targetListModel {
	return targetListModel{
		Labels: labels,
		Height: 15,
	}
}

func (m targetListModel) Init() tea.Cmd {
	return nil
}

func (m targetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "down", "j":
			if m.Cursor < len(m.Labels)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Labels) > 0 {
				m.Selected = m.Labels[m.Cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m targetListModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Select Target"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Labels) {
		end = len(m.Labels)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(m.Labels[i]) + "\n")
	}

	if len(m.Labels) == 0 {
		b.WriteString(listDimStyle.Render("  (no targets)") + "\n")
	}

	return b.String()
}
