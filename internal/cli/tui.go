package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/audiocircuits/pkg/parts"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PartBrowserModel - Interactive part library browser
// =============================================================================

// PartBrowserModel is the bubbletea model for browsing the part library.
// The left pane lists parts; the right pane shows the selected part.
type PartBrowserModel struct {
	Parts  []parts.Part
	Cursor int
	Height int
	Offset int
}

// NewPartBrowserModel creates a new part browser model.
func NewPartBrowserModel(ps []parts.Part) PartBrowserModel {
	return PartBrowserModel{Parts: ps, Height: 15}
}

func (m PartBrowserModel) Init() tea.Cmd {
	return nil
}

func (m PartBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Parts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Parts) > 0 {
				m.Cursor = len(m.Parts) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m PartBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Parts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Parts) == 0 {
		b.WriteString(listDimStyle.Render("  no parts"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Parts))
	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		p := m.Parts[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + p.Name))
		} else {
			list.WriteString(listNormalStyle.Render("  " + p.Name))
		}
		list.WriteString("\n")
	}

	left := lipgloss.NewStyle().Width(20).Render(list.String())
	right := partDetail(m.Parts[m.Cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Parts))))

	return b.String()
}
