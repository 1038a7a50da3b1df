package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"stockquote-gateway/internal/application"
	"stockquote-gateway/internal/domain"
	"stockquote-gateway/internal/infrastructure/httpx"
)

const (
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com"
	yahooChartPath      = "/v8/finance/chart/"
)

// YahooChartProvider reads one trading day of 1-minute bars from the Yahoo
// Finance chart API.
type YahooChartProvider struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.ChartProvider = (*YahooChartProvider)(nil)

func (p *YahooChartProvider) FetchChart(ctx context.Context, symbol domain.Symbol) (domain.Chart, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultYahooBaseURL
	}
	q := url.Values{}
	q.Set("interval", "1m")
	q.Set("range", "1d")
	endpoint := strings.TrimRight(base, "/") + yahooChartPath + url.PathEscape(string(symbol)) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Chart{}, domain.NewFetchError(fmt.Errorf("yahoo: create request: %w", err))
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var chart domain.Chart
	if err := client.DoJSON(ctx, req, &chart); err != nil {
		return domain.Chart{}, domain.NewFetchError(describe(err))
	}
	return chart, nil
}

// describe appends the chart error description carried by non-2xx bodies.
func describe(err error) error {
	var se *httpx.StatusError
	if !errors.As(err, &se) {
		return err
	}
	var body domain.Chart
	if json.Unmarshal(se.Body, &body) != nil || body.Chart.Error == nil || body.Chart.Error.Description == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, body.Chart.Error.Description)
}
