package application

import (
	"context"
	"time"

	"stockquote-gateway/internal/domain"
)

// ChartProvider fetches the raw chart document for a symbol. Failures are
// returned as *domain.FetchError.
type ChartProvider interface {
	FetchChart(ctx context.Context, symbol domain.Symbol) (domain.Chart, error)
}

type Clock interface {
	Now() time.Time
}

// Recorder receives per-request observations. Implementations must be safe
// for concurrent use.
type Recorder interface {
	ObserveFetch(d time.Duration)
	ObserveOutcome(o Outcome)
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type noopRecorder struct{}

func (noopRecorder) ObserveFetch(time.Duration) {}
func (noopRecorder) ObserveOutcome(Outcome) {}
