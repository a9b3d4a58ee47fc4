package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerceString returns the trimmed string and whether it is usable.
func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// coerceBool accepts native booleans and the literals "true"/"false" in any case.
func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// coerceFloat accepts native numbers and numeric strings. Blank strings, NaN
// and infinities are not numbers.
func coerceFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// coerceInt truncates a number toward zero.
func coerceInt(v any) (int, bool) {
	f, ok := coerceFloat(v)
	if !ok || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// isAbsent reports whether a cell carries no value at all.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func invalidReason(v any, want string) string {
	if isAbsent(v) {
		return "missing required value"
	}
	return fmt.Sprintf("expected %s, got %v", want, v)
}
