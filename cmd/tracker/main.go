package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"NiftySnapshot/internal/collector"
	"NiftySnapshot/internal/config"
	"NiftySnapshot/internal/logging"
	"NiftySnapshot/internal/notifier"
	"NiftySnapshot/internal/report"
	"NiftySnapshot/internal/scheduler"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("[FATAL] init logger: %v", err)
	}
	defer logger.Sync()

	// Init provider
	tickers := cfg.TickerSymbols()
	var provider collector.QuoteProvider
	switch cfg.DataSource.Provider {
	case "alpaca":
		provider = collector.NewAlpacaProvider(cfg.DataSource.APIKey, cfg.DataSource.APISecret, cfg.DataSource.BaseURL)
	case "mock":
		provider = &collector.MockProvider{Prices: collector.DemoPrices(tickers)}
	default:
		provider = collector.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	}
	logger.Info("data source", zap.String("provider", provider.Name()), zap.Int("tickers", len(tickers)))

	col := collector.NewCollector(provider, tickers, cfg.DataSource.SymbolSuffix, logger.Named("collector"))
	writer := report.NewWriter(cfg.Report.OutputPath)

	var n notifier.Notifier = notifier.NoopNotifier{}
	if cfg.Telegram.BotToken != "" {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger.Named("telegram"))
		logger.Info("telegram notifications enabled")
	}

	runner, err := scheduler.NewRunner(col, writer, n, cfg.Schedule.Spec, os.Stdout, logger.Named("runner"))
	if err != nil {
		logger.Fatal("init runner", zap.Error(err))
	}

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.RunOnce {
		logger.Info("RUN_ONCE enabled, running a single cycle")
		if _, err := runner.RunOnce(ctx); err != nil {
			logger.Warn("single cycle finished with error", zap.Error(err))
		}
		return
	}

	logger.Info("tracking stock data. Press Ctrl+C to stop.",
		zap.String("schedule", cfg.Schedule.Spec), zap.String("output", cfg.Report.OutputPath))
	runner.Run(ctx)
	logger.Info("tracker stopped")
}
