package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yahooServer(t *testing.T, status int, body string) *YahooProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/RELIANCE.NS", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("range"))
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewYahooProvider(srv.URL, "")
}

func TestYahooProvider_FetchQuote(t *testing.T) {
	p := yahooServer(t, http.StatusOK, `{"chart":{"result":[{"timestamp":[1718000000],
		"indicators":{"quote":[{"open":[2901.4499511],"close":[2934.1000977]}]}}],"error":null}}`)

	q, err := p.FetchQuote(context.Background(), "RELIANCE.NS")
	require.NoError(t, err)
	assert.Equal(t, "2901.45", q.Open.StringFixed(2))
	assert.Equal(t, "2934.10", q.Current.StringFixed(2))
	assert.EqualValues(t, "RELIANCE.NS", q.Symbol)
}

func TestYahooProvider_NoData(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"empty result":  {http.StatusOK, `{"chart":{"result":[],"error":null}}`},
		"no timestamps": {http.StatusOK, `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`},
		"null prices":   {http.StatusOK, `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[{"open":[null],"close":[null]}]}}],"error":null}}`},
		"missing close": {http.StatusOK, `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[{"open":[10.5]}]}}],"error":null}}`},
		"delisted":      {http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			p := yahooServer(t, c.status, c.body)
			_, err := p.FetchQuote(context.Background(), "RELIANCE.NS")
			assert.ErrorIs(t, err, ErrNoData)
			var pf *ProviderFault
			assert.False(t, errors.As(err, &pf))
		})
	}
}

func TestYahooProvider_ProviderFault(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"server error": {http.StatusInternalServerError, `oops`},
		"rate limited": {http.StatusTooManyRequests, `Too Many Requests`},
		"malformed":    {http.StatusOK, `{"chart":`},
		"api error":    {http.StatusBadRequest, `{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid input"}}}`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			p := yahooServer(t, c.status, c.body)
			_, err := p.FetchQuote(context.Background(), "RELIANCE.NS")
			var pf *ProviderFault
			require.True(t, errors.As(err, &pf), "got %v", err)
			assert.Equal(t, "yahoo", pf.Provider)
			assert.EqualValues(t, "RELIANCE.NS", pf.Symbol)
			assert.False(t, errors.Is(err, ErrNoData))
		})
	}
}

func TestYahooProvider_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	p := NewYahooProvider(srv.URL, "")

	_, err := p.FetchQuote(context.Background(), "RELIANCE.NS")
	var pf *ProviderFault
	assert.True(t, errors.As(err, &pf))
}
