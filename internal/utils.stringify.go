package internal

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Stringify converts a resolved value to the text spliced into a template.
//
// Rules:
//   - nil -> "null"
//   - string, []byte -> as-is
//   - bool -> "true" / "false"
//   - integers -> decimal
//   - floats -> shortest representation ("1.5", "3", "1e+21", "1e-7", "NaN",
//     "Infinity")
//   - error -> Error(), fmt.Stringer -> String()
//   - slices and arrays -> elements stringified and joined with ","
//     (nil elements become empty)
//   - maps and structs -> JSON, falling back to %v
func Stringify(v any) string {
	if v == nil {
		return StringValueNull
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		if val {
			return StringValueTrue
		}
		return StringValueFalse
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, IntBase10)
	case float64:
		return formatFloat(val, FloatBitSize64)
	case float32:
		return formatFloat(float64(val), FloatBitSize32)
	case json.Number:
		return val.String()
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	case []any:
		return joinElements(len(val), func(i int) any { return val[i] })
	case []string:
		return strings.Join(val, StringSliceSeparator)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), IntBase10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), IntBase10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return Stringify(rv.Bool())
	case reflect.Slice, reflect.Array:
		return joinElements(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Ptr:
		if rv.IsNil() {
			return StringValueNull
		}
		return Stringify(rv.Elem().Interface())
	case reflect.Map, reflect.Struct:
		if encoded, err := json.Marshal(v); err == nil {
			return string(encoded)
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var exponentPadding = strings.NewReplacer("e+0", "e+", "e-0", "e-")

// formatFloat uses fixed-point notation for magnitudes in [1e-6, 1e21) and
// exponent notation outside it.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return StringValueNaN
	case math.IsInf(f, 1):
		return StringValueInfinity
	case math.IsInf(f, -1):
		return StringValueNegInf
	}

	abs := math.Abs(f)
	if abs >= FloatExponentUpper || (abs != 0 && abs < FloatExponentLower) {
		// Two-digit exponents ("1e-07") are trimmed to "1e-7".
		s := strconv.FormatFloat(f, FloatExponentFlag, FloatPrecisionAll, bitSize)
		return exponentPadding.Replace(s)
	}
	return strconv.FormatFloat(f, FloatFormatFlag, FloatPrecisionAll, bitSize)
}

// joinElements stringifies n elements and joins them with commas.
func joinElements(n int, at func(int) any) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		elem := at(i)
		if elem == nil {
			continue
		}
		parts[i] = Stringify(elem)
	}
	return strings.Join(parts, StringSliceSeparator)
}
