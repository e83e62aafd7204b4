package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	buyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	holdStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *AppModel) View() string {
	if m.loading && m.dash == nil {
		return "\n  Loading dashboard..."
	}
	if m.err != nil {
		return warnStyle.Render(fmt.Sprintf("\n  Dashboard unavailable: %v\n\n  press r to retry, q to quit", m.err))
	}
	if m.dash == nil {
		return "\n  No data."
	}

	var sb strings.Builder

	title := fmt.Sprintf("%s buy tracker", m.dash.Symbol)
	if m.svc.Username != "" {
		title += "  (" + m.svc.Username + ")"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")
	if m.dash.Synthetic {
		sb.WriteString(warnStyle.Render("synthetic data, live feed unavailable"))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.viewCards())
	sb.WriteString("\n\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf(
		"window %d (←/→)  threshold %.1f%% (↑/↓)  amount $%.0f (+/-)  r reload  q quit",
		m.params.SMAWindow, m.params.Threshold, m.params.InvestmentAmount,
	)))
	return sb.String()
}

func (m *AppModel) viewCards() string {
	sim := m.dash.Simulation

	verdict := holdStyle.Render("HOLD")
	if len(m.dash.Table) > 0 && m.dash.Table[len(m.dash.Table)-1].Buy {
		verdict = buyStyle.Render("BUY")
	}

	gainPct := "n/a"
	if sim.GainPct != nil {
		gainPct = fmt.Sprintf("%+.2f%%", *sim.GainPct)
	}

	cards := []string{
		card("signal", verdict),
		card("invested", fmt.Sprintf("$%.2f", sim.TotalInvested)),
		card("value", fmt.Sprintf("$%.2f", sim.CurrentValue)),
		card("gain", fmt.Sprintf("$%.2f (%s)", sim.Gain, gainPct)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func card(label, value string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, cardLabelStyle.Render(label), value)
	return cardStyle.Render(body)
}
