package internal

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Lookup resolves a dot-notation path (e.g. "user.profile.name") against data.
// Returns the value and true if every segment resolved, or nil and false otherwise.
// A falsy intermediate value (nil, false, zero, empty string) stops the traversal.
// When foldCase is set, a map segment without an exact key falls back to the
// first key (in sorted order) that matches under Unicode case folding.
func Lookup(data map[string]any, path string, foldCase bool) (any, bool) {
	var current any = data

	for _, segment := range strings.Split(path, PathSeparator) {
		if IsFalsy(current) {
			return nil, false
		}
		next, ok := index(current, segment, foldCase)
		if !ok {
			return nil, false
		}
		current = next
	}

	return current, true
}

// index looks up a single path segment in v.
func index(v any, segment string, foldCase bool) (any, bool) {
	switch val := v.(type) {
	case map[string]any:
		if found, ok := val[segment]; ok {
			return found, true
		}
		if foldCase {
			if key, ok := foldKey(keysOf(val), segment); ok {
				return val[key], true
			}
		}
		return nil, false
	case map[string]string:
		if found, ok := val[segment]; ok {
			return found, true
		}
		if foldCase {
			if key, ok := foldKey(keysOf(val), segment); ok {
				return val[key], true
			}
		}
		return nil, false
	case []any:
		i, ok := sliceIndex(segment, len(val))
		if !ok {
			return nil, false
		}
		return val[i], true
	default:
		return indexReflect(reflect.ValueOf(v), segment, foldCase)
	}
}

// indexReflect handles maps with string keys, slices, arrays, structs and
// pointers to any of those.
func indexReflect(rv reflect.Value, segment string, foldCase bool) (any, bool) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		key := reflect.ValueOf(segment).Convert(rv.Type().Key())
		if found := rv.MapIndex(key); found.IsValid() {
			return found.Interface(), true
		}
		if !foldCase {
			return nil, false
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		if match, ok := foldKey(keys, segment); ok {
			return rv.MapIndex(reflect.ValueOf(match).Convert(rv.Type().Key())).Interface(), true
		}
		return nil, false
	case reflect.Slice, reflect.Array:
		i, ok := sliceIndex(segment, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(segment)
		if !ok && foldCase {
			field, ok = rv.Type().FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, segment)
			})
		}
		if !ok || !field.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	default:
		return nil, false
	}
}

// sliceIndex parses a decimal segment and bounds-checks it.
func sliceIndex(segment string, length int) (int, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// foldKey returns the first key, in sorted order, equal to segment under case folding.
func foldKey(keys []string, segment string) (string, bool) {
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, segment) {
			return k, true
		}
	}
	return "", false
}

// IsFalsy reports whether v stops a path traversal: nil, false, a numeric zero,
// NaN, an empty string or a nil pointer. Empty maps and slices are not falsy.
func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == ""
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0 || math.IsNaN(val)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0 || math.IsNaN(rv.Float())
	case reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
