package domain

import "strings"

// Symbol is a ticker identifier. It is opaque: the only normalization applied
// is upper-casing, and it is forwarded upstream as-is.
type Symbol string

func NormalizeSymbol(s string) Symbol {
	return Symbol(strings.ToUpper(s))
}

func (s Symbol) String() string { return string(s) }
