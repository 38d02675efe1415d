package collector

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"NiftySnapshot/internal/calculator"
	"NiftySnapshot/internal/model"
)

// Collector fetches quotes for a fixed ticker list and turns them into rows.
type Collector struct {
	Provider QuoteProvider
	Tickers  []model.TickerSymbol
	Suffix   string // stripped from symbols in rows, e.g. ".NS"
	Logger   *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(provider QuoteProvider, tickers []model.TickerSymbol, suffix string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{Provider: provider, Tickers: tickers, Suffix: suffix, Logger: logger}
}

// Collect fetches every ticker sequentially in list order. Tickers that fail
// are logged and left out; the result is empty when all of them fail.
func (c *Collector) Collect(ctx context.Context) []model.StockRow {
	rows := make([]model.StockRow, 0, len(c.Tickers))
	for _, ticker := range c.Tickers {
		q, err := c.Provider.FetchQuote(ctx, ticker)
		if err != nil {
			c.logFetchError(ticker, err)
			continue
		}
		change, err := calculator.ChangePercent(q.Open, q.Current)
		if err != nil {
			c.Logger.Warn("skipping ticker", zap.String("ticker", string(ticker)), zap.Error(err))
			continue
		}
		rows = append(rows, model.StockRow{
			Symbol:        c.displaySymbol(ticker),
			Open:          q.Open,
			Current:       q.Current,
			ChangePercent: change,
		})
	}
	return rows
}

func (c *Collector) displaySymbol(t model.TickerSymbol) string {
	if c.Suffix == "" {
		return string(t)
	}
	return strings.TrimSuffix(string(t), c.Suffix)
}

func (c *Collector) logFetchError(ticker model.TickerSymbol, err error) {
	var pf *ProviderFault
	switch {
	case errors.Is(err, ErrNoData):
		c.Logger.Warn("no valid data, ticker may be delisted or market closed",
			zap.String("ticker", string(ticker)), zap.Error(err))
	case errors.As(err, &pf):
		c.Logger.Warn("error fetching data",
			zap.String("ticker", string(ticker)), zap.String("provider", pf.Provider), zap.Error(pf.Err))
	default:
		c.Logger.Warn("error fetching data", zap.String("ticker", string(ticker)), zap.Error(err))
	}
}
