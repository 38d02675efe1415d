package collector

import (
	"context"
	"errors"
	"fmt"

	"NiftySnapshot/internal/model"
)

// ErrNoData means the provider answered but had no usable open/close prices.
var ErrNoData = errors.New("no data")

// ProviderFault wraps any other fetch-time failure (transport, status, payload).
type ProviderFault struct {
	Provider string
	Symbol   model.TickerSymbol
	Err      error
}

func (e *ProviderFault) Error() string {
	return fmt.Sprintf("%s: fetch %s: %v", e.Provider, e.Symbol, e.Err)
}

func (e *ProviderFault) Unwrap() error { return e.Err }

// QuoteProvider fetches the most recent session's open and current price for a ticker.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol model.TickerSymbol) (model.PriceQuote, error)
	Name() string
}

func fault(provider string, symbol model.TickerSymbol, err error) error {
	return &ProviderFault{Provider: provider, Symbol: symbol, Err: err}
}
