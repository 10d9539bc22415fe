package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-1-2"

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15",
}

// ParseAsOf normalizes a provider "date" value.
//
// An absent, empty or otherwise falsy value (false, 0, [], {}) means today
// (UTC midnight). Values containing a "T" are read as ISO-8601 timestamps and
// keep their wall clock; anything else is read as YYYY-MM-DD. Unparsable
// values, including other non-string JSON values, fall back to now.
func ParseAsOf(raw any, now time.Time) time.Time {
	now = now.UTC()

	var s string
	switch v := raw.(type) {
	case nil:
		return midnight(now)
	case bool:
		if !v {
			return midnight(now)
		}
		return now
	case float64:
		if v == 0 {
			return midnight(now)
		}
		return now
	case []any:
		if len(v) == 0 {
			return midnight(now)
		}
		return now
	case map[string]any:
		if len(v) == 0 {
			return midnight(now)
		}
		return now
	case string:
		if v == "" {
			return midnight(now)
		}
		s = v
	default:
		return now
	}

	if strings.Contains(s, "T") {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return now
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return now
	}
	return t
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
