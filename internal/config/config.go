package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"vgs-buy-tracker/internal/domain"
)

type Config struct {
	Symbol       string
	LookbackDays int

	SMAWindow        int
	Threshold        float64
	InvestmentAmount float64

	DatabaseURL string
	RedisURL    string
	APIKey      string

	HTTPPort       int
	SSHPort        int
	SSHHostKeyPath string

	BarPollSecs int

	TelegramBotToken string
	OpenAIAPIKey     string
	OpenAIModel      string
}

// Load reads the configuration from the environment, applying the dashboard
// defaults and warning about anything that disables a feature.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		APIKey:           strings.TrimSpace(os.Getenv("API_KEY")),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set, stale-data fallback disabled")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, /explain disabled")
	}

	cfg.Symbol = strings.TrimSpace(os.Getenv("SYMBOL"))
	if cfg.Symbol == "" {
		cfg.Symbol = domain.DefaultSymbol
	}

	cfg.LookbackDays = domain.LookbackDays
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LookbackDays = n
		}
	}

	defaults := domain.DefaultParams()

	cfg.SMAWindow = defaults.SMAWindow
	if v := os.Getenv("SMA_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SMAWindow = n
		}
	}

	cfg.Threshold = defaults.Threshold
	if v := os.Getenv("SMA_THRESHOLD"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Threshold = n
		}
	}

	cfg.InvestmentAmount = defaults.InvestmentAmount
	if v := os.Getenv("INVESTMENT_AMOUNT"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.InvestmentAmount = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	cfg.SSHPort = 2222
	if v := strings.TrimSpace(os.Getenv("SSH_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/vgs_buy_tracker_ed25519"
	}

	cfg.BarPollSecs = 6 * 60 * 60 // daily bars rarely change intraday
	if v := strings.TrimSpace(os.Getenv("BAR_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BarPollSecs = n
		}
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	return cfg
}

// Params assembles the configured defaults into engine parameters, clamped
// to their domains.
func (c *Config) Params() domain.Params {
	return domain.Params{
		SMAWindow:        c.SMAWindow,
		Threshold:        c.Threshold,
		InvestmentAmount: c.InvestmentAmount,
	}.Clamp()
}
