package bootstrap

import (
	"fmt"

	"stockquote-gateway/internal/application"
	"stockquote-gateway/internal/config"
	defaults "stockquote-gateway/internal/infrastructure/config"
	httpserver "stockquote-gateway/internal/infrastructure/http"
	"stockquote-gateway/internal/infrastructure/httpx"
	"stockquote-gateway/internal/infrastructure/metrics"
	"stockquote-gateway/internal/infrastructure/provider"

	"go.uber.org/zap"
)

func ProvideHTTPClient(cfg config.Config, log *zap.Logger) *httpx.Client {
	if cfg.UpstreamInsecureSkipVerify {
		log.Warn("INSECURE: upstream TLS certificate verification is disabled",
			zap.String("upstream", cfg.UpstreamBaseURL))
	}
	return httpx.New(httpx.Options{
		Timeout:            cfg.UpstreamTimeout,
		UserAgent:          cfg.UpstreamUserAgent,
		InsecureSkipVerify: cfg.UpstreamInsecureSkipVerify,
	})
}

func ProvideChartProvider(cfg config.Config, log *zap.Logger) (application.ChartProvider, error) {
	switch cfg.Provider {
	case "yahoo", "":
		return &provider.YahooChartProvider{
			BaseURL: cfg.UpstreamBaseURL,
			Client:  ProvideHTTPClient(cfg, log),
		}, nil
	case "fake":
		log.Info("using fake chart provider")
		return provider.NewFake(defaults.DefaultFakePrice), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func ProvideMetrics() *metrics.Metrics { return metrics.New() }

func ProvideQuoteService(cp application.ChartProvider, m *metrics.Metrics, log *zap.Logger) *application.QuoteService {
	return application.NewQuoteService(cp,
		application.WithRecorder(m),
		application.WithLogger(log),
	)
}

func ProvideServer(svc *application.QuoteService, log *zap.Logger) *httpserver.Server {
	return httpserver.NewServer(svc, log)
}
