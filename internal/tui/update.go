package tui

import (
	"vgs-buy-tracker/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()
		return m, nil

	case dashboardMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.dash = msg.dash
			m.params = msg.dash.Params
		}
		m.refreshRows()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			return m.adjust(func(p *domain.Params) { p.SMAWindow-- })
		case "right":
			return m.adjust(func(p *domain.Params) { p.SMAWindow++ })
		case "down":
			return m.adjust(func(p *domain.Params) { p.Threshold -= 0.5 })
		case "up":
			return m.adjust(func(p *domain.Params) { p.Threshold += 0.5 })
		case "-":
			return m.adjust(func(p *domain.Params) { p.InvestmentAmount -= 100 })
		case "+", "=":
			return m.adjust(func(p *domain.Params) { p.InvestmentAmount += 100 })
		case "r":
			m.loading = true
			return m, m.loadDashboard()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// adjust applies a parameter tweak, clamps it to the slider domains, and
// recomputes. A tweak that clamps back to the current value is a no-op.
func (m *AppModel) adjust(fn func(*domain.Params)) (tea.Model, tea.Cmd) {
	next := m.params
	fn(&next)
	next = next.Clamp()
	if next == m.params {
		return m, nil
	}
	m.params = next
	m.loading = true
	return m, m.loadDashboard()
}
