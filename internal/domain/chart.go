package domain

// Chart mirrors the upstream chart document. Optional fields are pointers so
// that "absent" and "null" are distinguishable from zero.
type Chart struct {
	Chart ChartEnvelope `json:"chart"`
}

type ChartEnvelope struct {
	Result []ChartResult `json:"result"`
	Error  *ChartError   `json:"error"`
}

type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type ChartResult struct {
	Meta       ChartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators ChartIndicators `json:"indicators"`
}

type ChartIndicators struct {
	Quote []ChartSeries `json:"quote"`
}

// ChartSeries holds per-sample values aligned with ChartResult.Timestamp.
type ChartSeries struct {
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type ChartMeta struct {
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	PreviousClose        *float64 `json:"previousClose"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	RegularMarketOpen    *float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *float64 `json:"regularMarketVolume"`
	MarketState          *string  `json:"marketState"`
}
