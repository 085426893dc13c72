package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	PriceSource struct {
		BaseURL string `yaml:"base_url"`
		Asset   string `yaml:"asset"`
	} `yaml:"price_source"`
	Alerts struct {
		Low  float64 `yaml:"low"`
		High float64 `yaml:"high"`
	} `yaml:"alerts"`
	Schedule struct {
		Interval  string `yaml:"interval"`
		DailyHour int    `yaml:"daily_hour"`
		Timezone  string `yaml:"timezone"`
	} `yaml:"schedule"`
	Chart struct {
		Path       string `yaml:"path"`
		WindowDays int    `yaml:"window_days"`
	} `yaml:"chart"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.PriceSource.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	// Defaults
	if cfg.PriceSource.BaseURL == "" {
		cfg.PriceSource.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.PriceSource.Asset == "" {
		cfg.PriceSource.Asset = "ethereum"
	}
	if cfg.Alerts.Low == 0 {
		cfg.Alerts.Low = 2500
	}
	if cfg.Alerts.High == 0 {
		cfg.Alerts.High = 4000
	}
	if cfg.Schedule.Interval == "" {
		cfg.Schedule.Interval = "@every 15m"
	}
	if cfg.Schedule.DailyHour == 0 {
		cfg.Schedule.DailyHour = 16
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Europe/Amsterdam"
	}
	if cfg.Chart.Path == "" {
		cfg.Chart.Path = "eth_chart.png"
	}
	if cfg.Chart.WindowDays == 0 {
		cfg.Chart.WindowDays = 14
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Alerts.Low >= c.Alerts.High {
		return fmt.Errorf("alerts.low (%.0f) must be below alerts.high (%.0f)", c.Alerts.Low, c.Alerts.High)
	}
	if c.Schedule.DailyHour < 0 || c.Schedule.DailyHour > 23 {
		return fmt.Errorf("schedule.daily_hour must be between 0 and 23")
	}
	if c.Chart.WindowDays < 1 {
		return fmt.Errorf("chart.window_days must be positive")
	}
	return nil
}
