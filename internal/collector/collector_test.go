package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"NiftySnapshot/internal/model"
)

func TestCollect_OrderAndSuffix(t *testing.T) {
	mp := &MockProvider{Prices: map[model.TickerSymbol]MockPrice{
		"AAA.NS": {Open: 100, Current: 105},
		"BBB.NS": {Open: 200, Current: 198},
	}}
	c := NewCollector(mp, []model.TickerSymbol{"AAA.NS", "BBB.NS"}, ".NS", nil)

	rows := c.Collect(context.Background())
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA", rows[0].Symbol)
	assert.Equal(t, "5.00", rows[0].ChangePercent.StringFixed(2))
	assert.Equal(t, "BBB", rows[1].Symbol)
	assert.Equal(t, "-1.00", rows[1].ChangePercent.StringFixed(2))
	assert.Equal(t, []model.TickerSymbol{"AAA.NS", "BBB.NS"}, mp.Calls)
}

func TestCollect_SkipsFailuresAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mp := &MockProvider{
		Prices: map[model.TickerSymbol]MockPrice{
			"AAA.NS":  {Open: 100, Current: 101},
			"DDD.NS":  {Open: 50, Current: 49},
			"ZERO.NS": {Open: 0, Current: 10},
		},
		Faults: map[model.TickerSymbol]error{"CCC.NS": errors.New("connection reset")},
	}
	tickers := []model.TickerSymbol{"AAA.NS", "BBB.NS", "CCC.NS", "DDD.NS", "ZERO.NS"}
	c := NewCollector(mp, tickers, ".NS", zap.New(core))

	rows := c.Collect(context.Background())
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA", rows[0].Symbol)
	assert.Equal(t, "DDD", rows[1].Symbol)
	assert.Len(t, mp.Calls, 5, "every ticker is attempted once, no retries")

	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("ticker", "BBB.NS")).Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("provider", "mock")).Len())
}

func TestCollect_AllFail(t *testing.T) {
	c := NewCollector(&MockProvider{}, []model.TickerSymbol{"AAA.NS"}, ".NS", nil)
	assert.Empty(t, c.Collect(context.Background()))
}

func TestDemoPrices(t *testing.T) {
	tickers := []model.TickerSymbol{"A", "B", "C"}
	prices := DemoPrices(tickers)
	require.Len(t, prices, 3)
	for _, tk := range tickers {
		assert.Greater(t, prices[tk].Open, 0.0)
	}
	assert.Equal(t, prices, DemoPrices(tickers))
}
