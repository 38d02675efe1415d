package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"NiftySnapshot/internal/model"
)

// MockPrice is a fixed open/current pair served by MockProvider.
type MockPrice struct {
	Open    float64
	Current float64
}

// MockProvider returns controllable fixed data for development and testing.
// Symbols missing from Prices yield ErrNoData; symbols in Faults yield a ProviderFault.
type MockProvider struct {
	Prices map[model.TickerSymbol]MockPrice
	Faults map[model.TickerSymbol]error
	Calls  []model.TickerSymbol
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchQuote(_ context.Context, symbol model.TickerSymbol) (model.PriceQuote, error) {
	m.Calls = append(m.Calls, symbol)
	if err, ok := m.Faults[symbol]; ok {
		return model.PriceQuote{}, fault(m.Name(), symbol, err)
	}
	p, ok := m.Prices[symbol]
	if !ok {
		return model.PriceQuote{}, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}
	return model.PriceQuote{
		Symbol:    symbol,
		Open:      decimal.NewFromFloat(p.Open).Round(2),
		Current:   decimal.NewFromFloat(p.Current).Round(2),
		FetchedAt: time.Now(),
	}, nil
}

// DemoPrices builds a deterministic price table for the given tickers so the
// mock provider can drive a full cycle without network access.
func DemoPrices(tickers []model.TickerSymbol) map[model.TickerSymbol]MockPrice {
	prices := make(map[model.TickerSymbol]MockPrice, len(tickers))
	for i, t := range tickers {
		open := 100 + float64(i)*37.5
		drift := float64(i%7-3) * 0.004
		prices[t] = MockPrice{Open: open, Current: open * (1 + drift)}
	}
	return prices
}
