package domain

import "strings"

// Pair is a base/quote currency pair. Codes are not checked against any whitelist.
type Pair struct {
	Base  string
	Quote string
}

func NewPair(from, to string) Pair {
	return Pair{Base: strings.ToUpper(from), Quote: strings.ToUpper(to)}
}

func (p Pair) String() string { return p.Base + "/" + p.Quote }
