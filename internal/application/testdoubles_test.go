package application

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"stockquote-gateway/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeChartProvider struct {
	chart domain.Chart
	err   error
	calls []domain.Symbol
}

func (f *fakeChartProvider) FetchChart(_ context.Context, symbol domain.Symbol) (domain.Chart, error) {
	f.calls = append(f.calls, symbol)
	if f.err != nil {
		return domain.Chart{}, f.err
	}
	return f.chart, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

type memRecorder struct {
	mu       sync.Mutex
	fetches  int
	outcomes []Outcome
}

func (m *memRecorder) ObserveFetch(time.Duration) {
	m.mu.Lock()
	m.fetches++
	m.mu.Unlock()
}

func (m *memRecorder) ObserveOutcome(o Outcome) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, o)
	m.mu.Unlock()
}

func mustChart(t *testing.T, body string) domain.Chart {
	t.Helper()
	var c domain.Chart
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	return c
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

const chartOK = `{
  "chart": {
    "result": [{
      "meta": {
        "symbol": "AAPL",
        "currency": "USD",
        "chartPreviousClose": 100.0,
        "regularMarketPrice": 104.0,
        "regularMarketOpen": 101.111,
        "regularMarketDayHigh": 106.499,
        "regularMarketDayLow": 99.001,
        "regularMarketVolume": 5000000,
        "marketState": "POST"
      },
      "timestamp": [1700000000, 1700000060, 1700000120, 1700000180],
      "indicators": {
        "quote": [{
          "close":  [101.5, 103.2, 105.256, null],
          "volume": [1000, 2000, 3000, null]
        }]
      }
    }],
    "error": null
  }
}`
