package advisor

import (
	"fmt"
	"strings"
	"time"

	"vgs-buy-tracker/internal/domain"
)

const advisorBrief = `You are an assistant for a single-ETF dollar-cost-averaging tracker. Your role is to interpret the computed dashboard, NOT to generate signals or predictions yourself.

The tracker's rules:
- A day is buy-flagged when its close sits further below its trailing SMA than the configured threshold, or when the last three completed weeks each closed lower than the week before.
- The simulation assumes a fixed dollar amount invested at the close of every buy-flagged day in the window.

Rules:
- Only reference values present in the data below. Never fabricate numbers.
- If the data is marked synthetic, say so up front and treat every figure as illustrative.
- Keep responses short. You are talking via Telegram.
- Do not attach financial advice disclaimers. The user understands this is informational.`

func BuildSystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(advisorBrief)
	sb.WriteString("\n\n--- DASHBOARD DATA (as of ")
	sb.WriteString(time.Now().UTC().Format(time.RFC822))
	sb.WriteString(") ---")
	return sb.String()
}

// FormatDashboardContext flattens the dashboard into the user message of a
// single-shot completion.
func FormatDashboardContext(dash *domain.Dashboard) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Symbol: %s\n", dash.Symbol)
	fmt.Fprintf(&sb, "Parameters: SMA window %d, threshold %.1f%%, $%.0f per buy\n",
		dash.Params.SMAWindow, dash.Params.Threshold, dash.Params.InvestmentAmount)
	if dash.Synthetic {
		sb.WriteString("WARNING: synthetic data, the live price feed was unavailable\n")
	}

	if len(dash.Table) > 0 {
		p := dash.Table[len(dash.Table)-1]
		fmt.Fprintf(&sb, "Latest (%s): close $%.2f, SMA $%.2f, %.2f%% vs SMA, downtrend=%t, buy=%t\n",
			p.Date.Format("2006-01-02"), p.Close, p.SMA, p.PctBelowSMA, p.Downtrend, p.Buy)
	}

	sim := dash.Simulation
	fmt.Fprintf(&sb, "Simulation: invested $%.2f across %d buy days, current value $%.2f, gain $%.2f",
		sim.TotalInvested, len(dash.Chart.BuyMarkers), sim.CurrentValue, sim.Gain)
	if sim.GainPct != nil {
		fmt.Fprintf(&sb, " (%.2f%%)", *sim.GainPct)
	} else {
		sb.WriteString(" (no buys triggered)")
	}
	sb.WriteString("\n")

	return sb.String()
}
