package application

import (
	"context"
	"errors"
	"time"

	"stockquote-gateway/internal/domain"

	"go.uber.org/zap"
)

// QuoteService runs the fetch-then-normalize pipeline for one symbol.
// It holds no per-request state and is safe for concurrent use.
type QuoteService struct {
	provider ChartProvider
	clock    Clock
	recorder Recorder
	log      *zap.Logger
}

type Option func(*QuoteService)

func WithClock(c Clock) Option { return func(s *QuoteService) { s.clock = c } }
func WithRecorder(r Recorder) Option { return func(s *QuoteService) { s.recorder = r } }
func WithLogger(l *zap.Logger) Option {
	return func(s *QuoteService) { s.log = l }
}

func NewQuoteService(provider ChartProvider, opts ...Option) *QuoteService {
	s := &QuoteService{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.recorder == nil {
		s.recorder = noopRecorder{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GetQuote upper-cases rawSymbol, fetches its chart and normalizes it. The
// first failure ends the request; the returned error is a *domain.FetchError
// or a *domain.ShapeError.
func (s *QuoteService) GetQuote(ctx context.Context, rawSymbol string) (domain.Quote, error) {
	symbol := domain.NormalizeSymbol(rawSymbol)
	log := s.log.With(zap.String("symbol", symbol.String()))

	start := time.Now()
	chart, err := s.provider.FetchChart(ctx, symbol)
	s.recorder.ObserveFetch(time.Since(start))
	if err != nil {
		if !errors.Is(err, domain.ErrFetch) {
			err = domain.NewFetchError(err)
		}
		s.recorder.ObserveOutcome(OutcomeFetchError)
		log.Warn("quote.fetch_failed", zap.Error(err))
		return domain.Quote{}, err
	}

	q, err := Normalize(symbol, chart, s.clock.Now())
	if err != nil {
		s.recorder.ObserveOutcome(Classify(err))
		log.Warn("quote.normalize_failed", zap.Error(err))
		return domain.Quote{}, err
	}
	s.recorder.ObserveOutcome(OutcomeOK)
	log.Debug("quote.served", zap.String("price", q.Price.String()))
	return q, nil
}
