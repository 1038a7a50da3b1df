package provider

import (
	"context"
	"time"

	"stockquote-gateway/internal/application"
	"stockquote-gateway/internal/domain"
)

// Ensure Fake implements application.ChartProvider.
var _ application.ChartProvider = (*Fake)(nil)

// Fake serves a flat intraday chart around a fixed price for any symbol.
type Fake struct {
	price float64
}

func NewFake(price float64) *Fake { return &Fake{price: price} }

func (f *Fake) FetchChart(_ context.Context, _ domain.Symbol) (domain.Chart, error) {
	prev := f.price * 0.99
	high := f.price * 1.01
	low := f.price * 0.98
	vol := float64(1_000_000)
	state := "REGULAR"

	now := time.Now().Unix()
	closes := []*float64{&prev, nil, &f.price}
	volumes := []*float64{&vol, nil, &vol}
	return domain.Chart{Chart: domain.ChartEnvelope{Result: []domain.ChartResult{{
		Meta: domain.ChartMeta{
			ChartPreviousClose:   &prev,
			RegularMarketPrice:   &f.price,
			RegularMarketOpen:    &prev,
			RegularMarketDayHigh: &high,
			RegularMarketDayLow:  &low,
			RegularMarketVolume:  &vol,
			MarketState:          &state,
		},
		Timestamp:  []int64{now - 120, now - 60, now},
		Indicators: domain.ChartIndicators{Quote: []domain.ChartSeries{{Close: closes, Volume: volumes}}},
	}}}}, nil
}
