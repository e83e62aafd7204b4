package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"vgs-buy-tracker/internal/domain"
	"vgs-buy-tracker/internal/service"

	tele "gopkg.in/telebot.v3"
)

// Explainer produces a plain-language summary of a dashboard. Nil disables
// the /explain command.
type Explainer interface {
	Explain(ctx context.Context, dash *domain.Dashboard) (string, error)
}

// StartTelegramBot wires the tracker's commands onto a long-polling bot.
// Without TELEGRAM_BOT_TOKEN the bot is skipped entirely.
func StartTelegramBot(dashboard *service.DashboardService, params domain.Params, explainer Explainer) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/signal", func(c tele.Context) error {
		dash, err := dashboard.GetDashboard(context.Background(), params, nil, nil)
		if err != nil {
			return c.Send(fmt.Sprintf("Error computing signal: %v", err))
		}
		return c.Send(formatSignal(dash))
	})

	b.Handle("/sim", func(c tele.Context) error {
		p, err := parseSimArgs(c.Args(), params)
		if err != nil {
			return c.Send(fmt.Sprintf("%v\nUsage: /sim [window threshold amount], e.g. /sim 20 -3 1500", err))
		}
		sim, err := dashboard.GetSimulation(context.Background(), p)
		if err != nil {
			return c.Send(fmt.Sprintf("Error running simulation: %v", err))
		}
		return c.Send(formatSimulation(p, sim))
	})

	b.Handle("/explain", func(c tele.Context) error {
		if explainer == nil {
			return c.Send("The advisor is not configured.")
		}
		dash, err := dashboard.GetDashboard(context.Background(), params, nil, nil)
		if err != nil {
			return c.Send(fmt.Sprintf("Error computing dashboard: %v", err))
		}
		text, err := explainer.Explain(context.Background(), dash)
		if err != nil {
			return c.Send(fmt.Sprintf("Advisor unavailable: %v", err))
		}
		return c.Send(text)
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatSignal(dash *domain.Dashboard) string {
	if len(dash.Table) == 0 {
		return "No decorated rows available yet."
	}
	p := dash.Table[len(dash.Table)-1]

	verdict := "HOLD"
	if p.Buy {
		verdict = "BUY"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s on %s\n", dash.Symbol, verdict, p.Date.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Close: $%.2f\nSMA(%d): $%.2f\nBelow SMA: %.2f%%\n", p.Close, dash.Params.SMAWindow, p.SMA, p.PctBelowSMA)
	if p.Downtrend {
		sb.WriteString("3-week downtrend: yes\n")
	}
	if dash.Synthetic {
		sb.WriteString("(synthetic data, live feed unavailable)\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatSimulation(p domain.Params, sim domain.SimulationResult) string {
	gainPct := "n/a"
	if sim.GainPct != nil {
		gainPct = fmt.Sprintf("%.2f%%", *sim.GainPct)
	}
	return fmt.Sprintf(
		"DCA simulation (window %d, threshold %.1f%%, $%.0f per trigger)\nInvested: $%.2f\nValue: $%.2f\nGain: $%.2f (%s)",
		p.SMAWindow, p.Threshold, p.InvestmentAmount,
		sim.TotalInvested, sim.CurrentValue, sim.Gain, gainPct,
	)
}

// parseSimArgs accepts zero or three positional arguments. Values outside
// the slider domains are clamped, not rejected.
func parseSimArgs(args []string, defaults domain.Params) (domain.Params, error) {
	if len(args) == 0 {
		return defaults, nil
	}
	if len(args) != 3 {
		return defaults, fmt.Errorf("expected 0 or 3 arguments, got %d", len(args))
	}

	window, err := strconv.Atoi(args[0])
	if err != nil {
		return defaults, fmt.Errorf("window must be an integer")
	}
	threshold, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return defaults, fmt.Errorf("threshold must be a number")
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return defaults, fmt.Errorf("amount must be a number")
	}

	return domain.Params{SMAWindow: window, Threshold: threshold, InvestmentAmount: amount}.Clamp(), nil
}
