package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TickerSymbol is an exchange-qualified ticker such as "RELIANCE.NS".
type TickerSymbol string

// PriceQuote is the open/current price pair for one ticker in the current session.
type PriceQuote struct {
	Symbol    TickerSymbol
	Open      decimal.Decimal
	Current   decimal.Decimal
	FetchedAt time.Time
}
