package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"NiftySnapshot/internal/calculator"
	"NiftySnapshot/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider implements QuoteProvider using the Yahoo Finance chart API.
type YahooProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooProvider creates a Yahoo provider with optional proxy support.
// An empty baseURL selects the public endpoint.
func NewYahooProvider(baseURL, proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultYahooBaseURL
	}
	return &YahooProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// yahooChart is the response structure from the chart API. Prices are
// pointers because Yahoo sends null for missing values.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchQuote requests one trading day of history and returns its open and last close.
func (p *YahooProvider) FetchQuote(ctx context.Context, symbol model.TickerSymbol) (model.PriceQuote, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", p.BaseURL, url.PathEscape(string(symbol)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.PriceQuote{}, fault(p.Name(), symbol, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return model.PriceQuote{}, fault(p.Name(), symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PriceQuote{}, fault(p.Name(), symbol, fmt.Errorf("read body: %w", err))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		if resp.StatusCode != http.StatusOK {
			return model.PriceQuote{}, fault(p.Name(), symbol, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body)))
		}
		return model.PriceQuote{}, fault(p.Name(), symbol, fmt.Errorf("decode: %w", err))
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return model.PriceQuote{}, fmt.Errorf("%s: %s: %w", symbol, chart.Chart.Error.Description, ErrNoData)
		}
		return model.PriceQuote{}, fault(p.Name(), symbol, fmt.Errorf("api error: %s", chart.Chart.Error.Description))
	}
	if resp.StatusCode != http.StatusOK {
		return model.PriceQuote{}, fault(p.Name(), symbol, fmt.Errorf("status %d", resp.StatusCode))
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.PriceQuote{}, fmt.Errorf("%s: empty chart: %w", symbol, ErrNoData)
	}

	quote := chart.Chart.Result[0].Indicators.Quote[0]
	open := firstPrice(quote.Open)
	closePrice := firstPrice(quote.Close)
	if open == nil || closePrice == nil {
		return model.PriceQuote{}, fmt.Errorf("%s: missing open or close: %w", symbol, ErrNoData)
	}

	return model.PriceQuote{
		Symbol:    symbol,
		Open:      calculator.Round2(*open),
		Current:   calculator.Round2(*closePrice),
		FetchedAt: time.Now(),
	}, nil
}

func firstPrice(series []*float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	return series[0]
}
