package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"NiftySnapshot/internal/model"
)

// Nifty50 is the default ticker list tracked when none is configured.
var Nifty50 = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "BHARTIARTL.NS", "ICICIBANK.NS",
	"HINDUNILVR.NS", "INFY.NS", "SBIN.NS", "KOTAKBANK.NS", "ITC.NS",
	"SUNPHARMA.NS", "LT.NS", "BAJFINANCE.NS", "HCLTECH.NS", "MARUTI.NS",
	"NTPC.NS", "ULTRACEMCO.NS", "AXISBANK.NS", "M&M.NS", "BAJAJFINSV.NS",
	"ONGC.NS", "TITAN.NS", "POWERGRID.NS", "ADANIPORTS.NS", "ADANIENT.NS",
	"WIPRO.NS", "JSWSTEEL.NS", "ASIANPAINT.NS", "COALINDIA.NS", "NESTLEIND.NS",
	"TATAMOTORS.NS", "BAJAJ-AUTO.NS", "GRASIM.NS", "TRENT.NS", "SBILIFE.NS",
	"TATASTEEL.NS", "EICHERMOT.NS", "HDFCLIFE.NS", "ZOMATO.NS", "BEL.NS",
	"HEROMOTOCO.NS", "TECHM.NS", "HINDALCO.NS", "SHRIRAMFIN.NS", "TATACONSUM.NS",
	"APOLLOHOSP.NS", "DRREDDY.NS", "CIPLA.NS", "JIOFIN.NS", "INDUSINDBK.NS",
}

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider     string `yaml:"provider"` // yahoo, alpaca or mock
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		APISecret    string `yaml:"api_secret"`
		SymbolSuffix string `yaml:"symbol_suffix"`
	} `yaml:"data_source"`
	Tickers  []string `yaml:"tickers"`
	Schedule struct {
		Spec string `yaml:"spec"`
	} `yaml:"schedule"`
	Report struct {
		OutputPath string `yaml:"output_path"`
	} `yaml:"report"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy   string `yaml:"proxy"`
	RunOnce bool   `yaml:"run_once"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

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
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.DataSource.APISecret = v
	}
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("SCHEDULE"); v != "" {
		cfg.Schedule.Spec = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.Report.OutputPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if os.Getenv("RUN_ONCE") == "true" {
		cfg.RunOnce = true
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.SymbolSuffix == "" {
		cfg.DataSource.SymbolSuffix = ".NS"
	}
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = append([]string(nil), Nifty50...)
	}
	if cfg.Schedule.Spec == "" {
		cfg.Schedule.Spec = "@every 60s"
	}
	if cfg.Report.OutputPath == "" {
		cfg.Report.OutputPath = "nifty50_latest_snapshot.xlsx"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "alpaca":
		if c.DataSource.APIKey == "" || c.DataSource.APISecret == "" {
			return fmt.Errorf("data_source.api_key and data_source.api_secret are required for alpaca")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	for _, t := range c.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("tickers must not contain blank symbols")
		}
	}
	if c.Report.OutputPath == "" {
		return fmt.Errorf("report.output_path is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TickerSymbols returns the configured tickers in order.
func (c *Config) TickerSymbols() []model.TickerSymbol {
	out := make([]model.TickerSymbol, len(c.Tickers))
	for i, t := range c.Tickers {
		out[i] = model.TickerSymbol(t)
	}
	return out
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
