package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pagerFooterHeight = 2

// reportPagerModel scrolls through a rendered scan report.
type reportPagerModel struct {
	viewport viewport.Model
}

func newReportPagerModel(content string, width, height int) reportPagerModel {
	vp := viewport.New(width, pagerHeight(height))
	vp.SetContent(content)

	return reportPagerModel{viewport: vp}
}

func (m reportPagerModel) Init() tea.Cmd {
	return nil
}

func (m reportPagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = pagerHeight(msg.Height)

		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m reportPagerModel) View() string {
	footer := mutedStyle.Render(fmt.Sprintf("%3.f%%  ↑/k up • ↓/j down • pgup/pgdn page • q quit",
		m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), "", footer)
}

func pagerHeight(height int) int {
	if height-pagerFooterHeight < 1 {
		return 1
	}

	return height - pagerFooterHeight
}
