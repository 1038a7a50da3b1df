package domain

import "errors"

var (
	ErrFetch = errors.New("upstream fetch failed")
	ErrShape = errors.New("unexpected upstream payload")
)

// FetchError reports a failure reaching or decoding the upstream provider.
// Error returns the underlying message unchanged.
type FetchError struct {
	Err error
}

func NewFetchError(err error) *FetchError { return &FetchError{Err: err} }

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }

// ShapeError reports a payload that decoded but lacks a required field.
type ShapeError struct {
	Reason string
}

func NewShapeError(reason string) *ShapeError { return &ShapeError{Reason: reason} }

func (e *ShapeError) Error() string { return e.Reason }

func (e *ShapeError) Unwrap() error { return ErrShape }
