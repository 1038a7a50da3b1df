package application

import (
	"time"

	"stockquote-gateway/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	defaultMarketState = "REGULAR"
	priceDecimals      = 2

	// exactExp is small enough for NewFromFloatWithExponent to keep every
	// binary digit of a float64.
	exactExp = -1074
)

// Normalize derives the canonical quote from a decoded chart document.
//
// The latest sample is the last entry with a non-null close. When none exists
// the meta regular-market price and volume are used instead. Open falls back
// to the derived price; previous close, day high and day low are required.
func Normalize(symbol domain.Symbol, chart domain.Chart, now time.Time) (domain.Quote, error) {
	if len(chart.Chart.Result) == 0 {
		return domain.Quote{}, domain.NewShapeError("Invalid data format")
	}
	res := chart.Chart.Result[0]
	meta := res.Meta
	if len(res.Indicators.Quote) == 0 {
		return domain.Quote{}, domain.NewShapeError("missing indicators.quote")
	}
	series := res.Indicators.Quote[0]
	// absent or null arrays decode to nil; an empty array does not
	switch {
	case res.Timestamp == nil:
		return domain.Quote{}, domain.NewShapeError("missing timestamp")
	case series.Close == nil:
		return domain.Quote{}, domain.NewShapeError("missing indicators.quote.close")
	case series.Volume == nil:
		return domain.Quote{}, domain.NewShapeError("missing indicators.quote.volume")
	}

	price, volume, ok := latestSample(res.Timestamp, series)
	if !ok {
		if meta.RegularMarketPrice == nil {
			return domain.Quote{}, domain.NewShapeError("missing meta.regularMarketPrice")
		}
		price = *meta.RegularMarketPrice
		volume = metaVolume(meta)
	}

	prevClose := meta.ChartPreviousClose
	if prevClose == nil {
		prevClose = meta.PreviousClose
	}
	if prevClose == nil {
		return domain.Quote{}, domain.NewShapeError("missing meta.chartPreviousClose")
	}
	if *prevClose == 0 {
		return domain.Quote{}, domain.NewShapeError("meta.chartPreviousClose is zero")
	}
	if meta.RegularMarketDayHigh == nil {
		return domain.Quote{}, domain.NewShapeError("missing meta.regularMarketDayHigh")
	}
	if meta.RegularMarketDayLow == nil {
		return domain.Quote{}, domain.NewShapeError("missing meta.regularMarketDayLow")
	}

	change := price - *prevClose
	changePct := change / *prevClose * 100

	open := price
	if meta.RegularMarketOpen != nil {
		open = *meta.RegularMarketOpen
	}

	// A zero sample volume is indistinguishable from a missing one.
	if volume == 0 {
		volume = metaVolume(meta)
	}

	state := defaultMarketState
	if meta.MarketState != nil {
		state = *meta.MarketState
	}

	return domain.Quote{
		Symbol:        symbol,
		Price:         round(price),
		Change:        round(change),
		ChangePercent: round(changePct),
		Open:          round(open),
		High:          round(*meta.RegularMarketDayHigh),
		Low:           round(*meta.RegularMarketDayLow),
		PreviousClose: round(*prevClose),
		Volume:        volume,
		MarketState:   state,
		GeneratedAt:   now,
	}, nil
}

// latestSample walks the aligned series backwards and returns the close and
// volume of the last sample whose close is present.
func latestSample(ts []int64, s domain.ChartSeries) (float64, int64, bool) {
	n := min(len(ts), len(s.Close), len(s.Volume))
	for i := n - 1; i >= 0; i-- {
		c := s.Close[i]
		if c == nil {
			continue
		}
		var v int64
		if s.Volume[i] != nil {
			v = int64(*s.Volume[i])
		}
		return *c, v, true
	}
	return 0, 0, false
}

func metaVolume(m domain.ChartMeta) int64 {
	if m.RegularMarketVolume == nil {
		return 0
	}
	return int64(*m.RegularMarketVolume)
}

// round takes the exact binary value of x to two decimals, half to even, so
// 1.015 (stored as 1.01499...) becomes 1.01.
func round(x float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(x, exactExp).RoundBank(priceDecimals)
}
