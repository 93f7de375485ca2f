package utils

import (
	"reflect"
	"strings"
)

// PadLeft pads s on the left with pad until it reaches width. A longer s is
// returned unchanged; an empty pad defaults to a space.
func PadLeft(s string, width int, pad string) string {
	if pad == "" {
		pad = " "
	}
	if len(s) >= width {
		return s
	}
	return strings.Repeat(pad[:1], width-len(s)) + s
}

// PadRight pads s on the right with pad until it reaches width
func PadRight(s string, width int, pad string) string {
	if pad == "" {
		pad = " "
	}
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(pad[:1], width-len(s))
}

// Numeric safely converts supported types to float64.
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case float32:
		return float64(val)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float()
		}
		return 0
	}
}
