package utils

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
)

// Entry is a key-value pair from a map.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Entries returns the key-value pairs of m ordered by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	keys := Keys(m)
	out := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		out[i] = Entry[K, V]{Key: k, Value: m[k]}
	}
	return out
}

// Pick returns a new map with only the listed keys that exist in m.
// With omitNil set, keys whose value is nil are skipped as well.
func Pick[K comparable, V any](m map[K]V, keys []K, omitNil bool) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if omitNil && IsNil(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func, channel
// or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
