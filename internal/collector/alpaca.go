package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"NiftySnapshot/internal/calculator"
	"NiftySnapshot/internal/model"
)

// barsClient is the subset of the Alpaca market data client used here.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaProvider implements QuoteProvider with Alpaca daily bars.
type AlpacaProvider struct {
	Client barsClient
	// Lookback bounds the bar query so weekends and holidays still yield a session.
	Lookback time.Duration
}

// NewAlpacaProvider creates a provider backed by the Alpaca market data API.
// An empty baseURL selects the client's default endpoint.
func NewAlpacaProvider(apiKey, apiSecret, baseURL string) *AlpacaProvider {
	return &AlpacaProvider{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   baseURL,
		}),
		Lookback: 7 * 24 * time.Hour,
	}
}

func (p *AlpacaProvider) Name() string { return "alpaca" }

// FetchQuote returns the open and close of the most recent daily bar.
func (p *AlpacaProvider) FetchQuote(ctx context.Context, symbol model.TickerSymbol) (model.PriceQuote, error) {
	if err := ctx.Err(); err != nil {
		return model.PriceQuote{}, fault(p.Name(), symbol, err)
	}
	bars, err := p.Client.GetBars(string(symbol), marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     time.Now().Add(-p.Lookback),
	})
	if err != nil {
		return model.PriceQuote{}, fault(p.Name(), symbol, err)
	}
	return quoteFromBars(symbol, bars)
}

func quoteFromBars(symbol model.TickerSymbol, bars []marketdata.Bar) (model.PriceQuote, error) {
	if len(bars) == 0 {
		return model.PriceQuote{}, fmt.Errorf("%s: no bars: %w", symbol, ErrNoData)
	}
	last := bars[len(bars)-1]
	if last.Open == 0 || last.Close == 0 {
		return model.PriceQuote{}, fmt.Errorf("%s: missing open or close: %w", symbol, ErrNoData)
	}
	return model.PriceQuote{
		Symbol:    symbol,
		Open:      calculator.Round2(last.Open),
		Current:   calculator.Round2(last.Close),
		FetchedAt: time.Now(),
	}, nil
}
