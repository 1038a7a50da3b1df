package bootstrap

import (
	"errors"
	"net/http"

	"stockquote-gateway/internal/config"
	httpserver "stockquote-gateway/internal/infrastructure/http"
	"stockquote-gateway/internal/infrastructure/logx"
	"stockquote-gateway/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("unknown PROVIDER")

// API is the wired process: the public handler and the metrics endpoint.
type API struct {
	Handler http.Handler
	Metrics *metrics.Metrics
	// MetricsHandler is nil when METRICS_ADDR is empty.
	MetricsHandler http.Handler
}

func InitAPI(cfg config.Config, log *zap.Logger) (*API, error) {
	if log == nil {
		log = logx.L()
	}
	cp, err := ProvideChartProvider(cfg, log)
	if err != nil {
		return nil, err
	}
	m := ProvideMetrics()
	svc := ProvideQuoteService(cp, m, log)

	api := &API{
		Handler: httpserver.NewRouter(ProvideServer(svc, log)),
		Metrics: m,
	}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		api.MetricsHandler = mux
	}
	return api, nil
}
