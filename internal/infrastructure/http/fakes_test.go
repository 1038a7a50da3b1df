package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"stockquote-gateway/internal/application"
	"stockquote-gateway/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ application.ChartProvider = (*stubProvider)(nil)

// stubProvider serves a canned chart body or error and records requested symbols.
type stubProvider struct {
	mu      sync.Mutex
	body    string
	err     error
	panics  bool
	symbols []domain.Symbol
}

func (p *stubProvider) FetchChart(_ context.Context, symbol domain.Symbol) (domain.Chart, error) {
	p.mu.Lock()
	p.symbols = append(p.symbols, symbol)
	p.mu.Unlock()
	if p.panics {
		panic("provider exploded")
	}
	if p.err != nil {
		return domain.Chart{}, p.err
	}
	var c domain.Chart
	if err := json.Unmarshal([]byte(p.body), &c); err != nil {
		return domain.Chart{}, domain.NewFetchError(err)
	}
	return c, nil
}

func (p *stubProvider) calls() []domain.Symbol {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Symbol(nil), p.symbols...)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, 3, 15, 14, 30, 5, 123456000, time.Local)

func setup(t *testing.T, p *stubProvider) http.Handler {
	t.Helper()
	svc := application.NewQuoteService(p, application.WithClock(fixedClock{t: testNow}))
	return NewRouter(NewServer(svc, zap.NewNop()))
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

const chartRising = `{"chart":{"result":[{
  "meta":{"symbol":"AAPL","chartPreviousClose":100,"regularMarketPrice":104,
          "regularMarketOpen":101.5,"regularMarketDayHigh":106,"regularMarketDayLow":99.5,
          "regularMarketVolume":9000,"marketState":"REGULAR"},
  "timestamp":[1700000000,1700000060,1700000120],
  "indicators":{"quote":[{"close":[104.1,105.2567,null],"volume":[10,250,null]}]}}],
  "error":null}}`

const chartNoSamples = `{"chart":{"result":[{
  "meta":{"symbol":"MSFT","chartPreviousClose":200,"regularMarketPrice":210,
          "regularMarketDayHigh":212,"regularMarketDayLow":198,"regularMarketVolume":777},
  "timestamp":[],
  "indicators":{"quote":[{"close":[],"volume":[]}]}}],
  "error":null}}`

const chartNoHigh = `{"chart":{"result":[{
  "meta":{"symbol":"AAPL","chartPreviousClose":100,"regularMarketPrice":104,
          "regularMarketDayLow":99.5},
  "timestamp":[1700000000],
  "indicators":{"quote":[{"close":[104],"volume":[1]}]}}],
  "error":null}}`
