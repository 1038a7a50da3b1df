package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockquote-gateway/internal/config"
	"stockquote-gateway/internal/infrastructure/provider"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitAPI_FakeProvider(t *testing.T) {
	api, err := InitAPI(config.Config{Provider: "fake", MetricsAddr: ":0"}, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	api.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stock/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "TEST", body["symbol"])
	require.Equal(t, 100.0, body["price"])
	require.Equal(t, 99.0, body["previousClose"])
	require.Equal(t, 1.01, body["changePercent"])

	require.Equal(t, 1.0, testutil.ToFloat64(api.Metrics.QuoteRequests.WithLabelValues("ok")))

	require.NotNil(t, api.MetricsHandler)
	rec = httptest.NewRecorder()
	api.MetricsHandler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "stockquote_quote_requests_total")
}

func TestInitAPI_NoMetricsListener(t *testing.T) {
	api, err := InitAPI(config.Config{Provider: "fake"}, zap.NewNop())
	require.NoError(t, err)
	require.Nil(t, api.MetricsHandler)
}

func TestInitAPI_UnknownProvider(t *testing.T) {
	_, err := InitAPI(config.Config{Provider: "bloomberg"}, zap.NewNop())
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestProvideChartProvider_Yahoo(t *testing.T) {
	cfg := config.Config{Provider: "yahoo", UpstreamBaseURL: "http://example.test", UpstreamUserAgent: "UA"}
	cp, err := ProvideChartProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	y, ok := cp.(*provider.YahooChartProvider)
	require.True(t, ok)
	require.Equal(t, "http://example.test", y.BaseURL)
	require.Equal(t, "UA", y.Client.UserAgent)
}

func TestProvideHTTPClient_InsecureWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ProvideHTTPClient(config.Config{UpstreamInsecureSkipVerify: true}, zap.New(core))
	require.Equal(t, 1, logs.Len())
	require.Contains(t, logs.All()[0].Message, "INSECURE")

	core, logs = observer.New(zap.WarnLevel)
	ProvideHTTPClient(config.Config{}, zap.New(core))
	require.Zero(t, logs.Len())
}
