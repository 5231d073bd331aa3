package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TotalTokens returns usage.total_tokens from a decoded usage object.
// Any JSON number or numeric string is accepted.
func TotalTokens(usage map[string]any) (uint64, bool) {
	v, ok := usage["total_tokens"]
	if !ok {
		return 0, false
	}
	n, err := toInt(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// ParseMaxTokens coerces a max_tokens value to an integer. Integers,
// integral floats and numeric strings with the same value all yield the
// same result.
func ParseMaxTokens(v any) (int, error) {
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("invalid max_tokens: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid max_tokens: %d is negative", n)
	}
	return int(n), nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func toInt(v any) (int64, error) {
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d out of range", v)
		}
		return int64(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		return parseInt(v.String())
	case string:
		return parseInt(v)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func floatToInt(v float64) (int64, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%v is not an integer", v)
	}
	return int64(v), nil
}

func parseInt(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return floatToInt(f)
	}
	return 0, fmt.Errorf("%q is not a number", v)
}
