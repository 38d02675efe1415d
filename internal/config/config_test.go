package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NiftySnapshot/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, ".NS", cfg.DataSource.SymbolSuffix)
	assert.Len(t, cfg.Tickers, 50)
	assert.Equal(t, "RELIANCE.NS", cfg.Tickers[0])
	assert.Equal(t, "INDUSINDBK.NS", cfg.Tickers[49])
	assert.Equal(t, "@every 60s", cfg.Schedule.Spec)
	assert.Equal(t, "nifty50_latest_snapshot.xlsx", cfg.Report.OutputPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.RunOnce)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_source:
  provider: mock
tickers: ["AAA.NS", "BBB.NS"]
schedule:
  spec: "*/5 9-15 * * 1-5"
report:
  output_path: out.xlsx
`), 0o644))

	t.Setenv("OUTPUT_PATH", "env.xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RUN_ONCE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.DataSource.Provider)
	assert.Equal(t, []model.TickerSymbol{"AAA.NS", "BBB.NS"}, cfg.TickerSymbols())
	assert.Equal(t, "*/5 9-15 * * 1-5", cfg.Schedule.Spec)
	assert.Equal(t, "env.xlsx", cfg.Report.OutputPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.RunOnce)
}

func TestLoad_TickersEnv(t *testing.T) {
	t.Setenv("TICKERS", " AAA.NS, ,BBB.NS ")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA.NS", "BBB.NS"}, cfg.Tickers)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tickers: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.DataSource.Provider = "bloomberg"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DataSource.Provider = "alpaca"
	assert.Error(t, cfg.Validate())
	cfg.DataSource.APIKey, cfg.DataSource.APISecret = "k", "s"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Tickers = []string{"AAA.NS", " "}
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Telegram.BotToken = "token"
	assert.Error(t, cfg.Validate())
	cfg.Telegram.ChatID = "42"
	assert.NoError(t, cfg.Validate())
}
