package application

import (
	"errors"

	"stockquote-gateway/internal/domain"
)

// Outcome classifies how a quote request ended.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeFetchError Outcome = "fetch_error"
	OutcomeShapeError Outcome = "shape_error"
)

// Classify maps an error returned by QuoteService.GetQuote to its Outcome.
// Errors of unknown kind count as fetch failures.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrShape):
		return OutcomeShapeError
	default:
		return OutcomeFetchError
	}
}
