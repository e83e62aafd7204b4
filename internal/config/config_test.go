package config

import (
	"testing"

	"vgs-buy-tracker/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SYMBOL", "LOOKBACK_DAYS", "SMA_WINDOW", "SMA_THRESHOLD", "INVESTMENT_AMOUNT",
		"DATABASE_URL", "REDIS_URL", "API_KEY", "HTTP_PORT", "SSH_PORT",
		"SSH_HOST_KEY_PATH", "BAR_POLL_SECS", "TELEGRAM_BOT_TOKEN",
		"OPENAI_API_KEY", "OPENAI_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Symbol != domain.DefaultSymbol {
		t.Fatalf("expected default symbol, got %s", cfg.Symbol)
	}
	if cfg.LookbackDays != domain.LookbackDays {
		t.Fatalf("expected default lookback, got %d", cfg.LookbackDays)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Fatalf("expected default redis url, got %s", cfg.RedisURL)
	}
	if cfg.HTTPPort != 8080 || cfg.SSHPort != 2222 {
		t.Fatalf("unexpected ports: %d, %d", cfg.HTTPPort, cfg.SSHPort)
	}
	if cfg.Params() != domain.DefaultParams() {
		t.Fatalf("expected default params, got %+v", cfg.Params())
	}
}

func TestLoadWithEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SYMBOL", "IVV.AX")
	t.Setenv("SMA_WINDOW", "30")
	t.Setenv("SMA_THRESHOLD", "-5")
	t.Setenv("INVESTMENT_AMOUNT", "2000")
	t.Setenv("BAR_POLL_SECS", "3600")

	cfg := Load()
	if cfg.Symbol != "IVV.AX" {
		t.Fatalf("unexpected symbol %s", cfg.Symbol)
	}
	if cfg.BarPollSecs != 3600 {
		t.Fatalf("expected poll secs 3600, got %d", cfg.BarPollSecs)
	}
	want := domain.Params{SMAWindow: 30, Threshold: -5, InvestmentAmount: 2000}
	if cfg.Params() != want {
		t.Fatalf("expected %+v, got %+v", want, cfg.Params())
	}
}

func TestLoadClampsOutOfDomainParams(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMA_WINDOW", "500")
	t.Setenv("SMA_THRESHOLD", "-50")
	t.Setenv("INVESTMENT_AMOUNT", "12")

	p := Load().Params()
	if p.SMAWindow != domain.MaxSMAWindow || p.Threshold != domain.MinThreshold || p.InvestmentAmount != domain.MinAmount {
		t.Fatalf("expected clamped params, got %+v", p)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("BAR_POLL_SECS", "soon")
	t.Setenv("HTTP_PORT", "-1")

	cfg := Load()
	if cfg.BarPollSecs != 6*60*60 {
		t.Fatalf("invalid poll secs should fall back, got %d", cfg.BarPollSecs)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("invalid port should fall back, got %d", cfg.HTTPPort)
	}
}
