package provider

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toFloat accepts JSON numbers and numeric strings.
func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid rate %q", n)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("invalid rate %v", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid rate %v", v)
	}
	return f, nil
}
