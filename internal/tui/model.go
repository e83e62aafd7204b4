package tui

import (
	"context"
	"fmt"

	"vgs-buy-tracker/internal/domain"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardQuerier recomputes the dashboard for a parameter set.
type DashboardQuerier interface {
	GetDashboard(ctx context.Context, params domain.Params, yMin, yMax *float64) (*domain.Dashboard, error)
}

// Services bundles everything a TUI session needs.
type Services struct {
	Dashboard DashboardQuerier
	Username  string
}

// AppModel is the bubbletea model for an SSH dashboard session. Every
// parameter change triggers a full recompute through the dashboard service.
type AppModel struct {
	svc    Services
	params domain.Params

	dash    *domain.Dashboard
	loading bool
	err     error

	table  table.Model
	width  int
	height int
}

type dashboardMsg struct {
	dash *domain.Dashboard
	err  error
}

func NewAppModel(svc Services) *AppModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Close", Width: 9},
			{Title: "SMA", Width: 9},
			{Title: "% vs SMA", Width: 9},
			{Title: "Trend", Width: 6},
			{Title: "Buy", Width: 4},
		}),
		table.WithFocused(true),
	)
	return &AppModel{
		svc:     svc,
		params:  domain.DefaultParams(),
		loading: true,
		table:   t,
	}
}

// SetSize is called before the program starts with the session's pty size.
func (m *AppModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resizeTable()
}

func (m *AppModel) Init() tea.Cmd {
	return m.loadDashboard()
}

func (m *AppModel) loadDashboard() tea.Cmd {
	params := m.params
	svc := m.svc.Dashboard
	return func() tea.Msg {
		dash, err := svc.GetDashboard(context.Background(), params, nil, nil)
		return dashboardMsg{dash: dash, err: err}
	}
}

func (m *AppModel) resizeTable() {
	h := m.height - 14
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

func (m *AppModel) refreshRows() {
	if m.dash == nil {
		m.table.SetRows(nil)
		return
	}
	rows := make([]table.Row, 0, len(m.dash.Table))
	for _, p := range m.dash.Table {
		trend, buy := "", ""
		if p.Downtrend {
			trend = "down"
		}
		if p.Buy {
			buy = "BUY"
		}
		rows = append(rows, table.Row{
			p.Date.Format("2006-01-02"),
			fmt.Sprintf("%.2f", p.Close),
			fmt.Sprintf("%.2f", p.SMA),
			fmt.Sprintf("%+.2f", p.PctBelowSMA),
			trend,
			buy,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}
