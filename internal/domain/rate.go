package domain

import "time"

// AsOfLayout is the normalized as-of format exposed to callers.
const AsOfLayout = "2006-01-02 15:04:05"

// Rate is a provider mid rate before any spread is applied.
type Rate struct {
	Mid    float64
	AsOf   time.Time
	Source string
}

func (r Rate) AsOfString() string { return r.AsOf.Format(AsOfLayout) }
