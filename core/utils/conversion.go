package utils

import (
	"encoding/json"
	"math"
	"strconv"
)

// ToInt converts integer-valued inputs to int.
// It accepts standard integer types, integral floats and json.Number; strings,
// fractional values and out-of-range numbers are rejected.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return fromInt64(v)
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return fromInt64(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return fromInt64(int64(v))
	case uint32:
		return fromInt64(int64(v))
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return fromInt64(i)
		}
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	default:
		return 0, false
	}
}

// ToString converts string-like inputs to string.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func fromInt64(v int64) (int, bool) {
	if v > math.MaxInt || v < math.MinInt {
		return 0, false
	}
	return int(v), true
}

func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return fromInt64(int64(f))
}
