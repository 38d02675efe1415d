package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRow is one data row of a snapshot.
type StockRow struct {
	Symbol        string // exchange suffix stripped
	Open          decimal.Decimal
	Current       decimal.Decimal
	ChangePercent decimal.Decimal
}

// Snapshot is the set of rows written in one cycle plus the summary average.
type Snapshot struct {
	Rows    []StockRow
	Average decimal.Decimal
	TakenAt time.Time
}
