package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the normalized record served for a symbol. Monetary fields are
// already rounded to two decimals.
type Quote struct {
	Symbol        Symbol
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	PreviousClose decimal.Decimal
	Volume        int64
	MarketState   string
	GeneratedAt   time.Time
}
