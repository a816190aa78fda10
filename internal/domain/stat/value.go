package stat

import (
	"math"
	"strconv"
	"strings"
)

// Value is a numeric cell that may be missing. Missing values are never coerced to zero.
type Value struct {
	Float float64
	Valid bool
}

func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{Float: v, Valid: true}
}

func OfInt(v int) Value {
	return Value{Float: float64(v), Valid: true}
}

func Missing() Value {
	return Value{}
}

// Parse converts a decoded JSON scalar into a Value. Strings are parsed as decimals,
// anything unparseable yields a missing value.
func Parse(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{}
	case float64:
		return Of(v)
	case float32:
		return Of(float64(v))
	case int:
		return OfInt(v)
	case int64:
		return Of(float64(v))
	case bool:
		if v {
			return Of(1)
		}
		return Of(0)
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return Value{}
		}
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}
		}
		return Of(parsed)
	default:
		return Value{}
	}
}

func (v Value) Div(divisor float64) Value {
	if !v.Valid || divisor == 0 {
		return Value{}
	}
	return Of(v.Float / divisor)
}

// Format renders the value with fixed precision; missing renders as an empty string.
func (v Value) Format(precision int) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'f', precision, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Float, 'f', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" || text == "" {
		*v = Value{}
		return nil
	}
	*v = Parse(strings.Trim(text, `"`))
	return nil
}

// Sum adds valid values and skips missing ones. The result is valid even when every input is missing.
func Sum(values ...Value) Value {
	total := 0.0
	for _, v := range values {
		if v.Valid {
			total += v.Float
		}
	}
	return Of(total)
}

// GreaterMissingLast orders descending with missing values last.
func GreaterMissingLast(a, b Value) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	if !a.Valid {
		return false
	}
	return a.Float > b.Float
}

// CompareDesc is a slices.SortStableFunc comparator: larger first, missing last.
func CompareDesc(a, b Value) int {
	switch {
	case GreaterMissingLast(a, b):
		return -1
	case GreaterMissingLast(b, a):
		return 1
	default:
		return 0
	}
}
