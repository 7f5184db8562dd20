package inventory

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a number-like value as supplied by a catalog: either a real number
// or numeric text such as "+5" or "2,5". The zero value holds nothing.
type Number struct {
	value  float64
	text   string
	isText bool
	set    bool
}

// NumberOf wraps a numeric value
func NumberOf(v float64) Number {
	return Number{value: v, set: true}
}

// NumberFromText wraps numeric text, parsed lazily by Float64. A single comma
// is read as a French decimal comma unless the text already has a dot, so
// "2,5" is 2.5 and "1,000" is 1. Thousands separators are not supported and
// "1,000,000" does not parse.
func NumberFromText(s string) Number {
	return Number{text: s, isText: true, set: true}
}

// IsSet reports whether a value was supplied at all
func (n Number) IsSet() bool {
	return n.set
}

// Float64 returns the numeric value and whether it is usable (present and finite)
func (n Number) Float64() (float64, bool) {
	if !n.set {
		return 0, false
	}

	v := n.value
	if n.isText {
		parsed, ok := parseNumericText(n.text)
		if !ok {
			return 0, false
		}
		v = parsed
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MarshalJSON keeps text values as text so a stored record round-trips unchanged
func (n Number) MarshalJSON() ([]byte, error) {
	switch {
	case !n.set:
		return []byte("null"), nil
	case n.isText:
		return json.Marshal(n.text)
	default:
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(n.value)
	}
}

// UnmarshalJSON accepts numbers and strings; anything else leaves the value unset
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return err
	}
	*n = numberFromAny(raw)
	return nil
}

func parseNumericText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "−", "-")
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numberFromAny converts a decoded JSON/YAML/structpb scalar into a Number
func numberFromAny(raw any) Number {
	switch v := raw.(type) {
	case float64:
		return NumberOf(v)
	case float32:
		return NumberOf(float64(v))
	case int:
		return NumberOf(float64(v))
	case int8:
		return NumberOf(float64(v))
	case int16:
		return NumberOf(float64(v))
	case int32:
		return NumberOf(float64(v))
	case int64:
		return NumberOf(float64(v))
	case uint:
		return NumberOf(float64(v))
	case uint8:
		return NumberOf(float64(v))
	case uint16:
		return NumberOf(float64(v))
	case uint32:
		return NumberOf(float64(v))
	case uint64:
		return NumberOf(float64(v))
	case json.Number:
		return NumberFromText(v.String())
	case string:
		return NumberFromText(v)
	case Number:
		return v
	default:
		return Number{}
	}
}

// intFromAny returns an integral value, or false when raw is not a whole number
func intFromAny(raw any) (int, bool) {
	v, ok := numberFromAny(raw).Float64()
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
