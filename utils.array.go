package utils

import (
	"math/rand/v2"
	"reflect"
	"slices"
)

// ToSlice normalizes v to a slice: nil becomes empty, slices and arrays are
// copied element-wise and any other value becomes a single-element slice.
func ToSlice(v any) []any {
	if v == nil {
		return []any{}
	}
	if s, ok := v.([]any); ok {
		return slices.Clone(s)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Flatten concatenates the inner slices one level deep.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}
	out := make([]T, 0, n)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// Uniq returns the distinct elements of items in order of first appearance.
func Uniq[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Last returns the final element, or false for an empty slice.
func Last[T any](items []T) (T, bool) {
	return At(items, -1)
}

// At returns items[index]; a negative index counts back from the end.
func At[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 {
		index += len(items)
	}
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// Remove drops the first occurrence of value. It returns the resulting slice
// and whether anything was removed. items is modified in place.
func Remove[T comparable](items []T, value T) ([]T, bool) {
	i := slices.Index(items, value)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

// Equal reports whether a and b have the same elements in the same order.
func Equal[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// StartsWith reports whether items begins with prefix.
func StartsWith[T comparable](items, prefix []T) bool {
	if len(prefix) > len(items) {
		return false
	}
	return slices.Equal(items[:len(prefix)], prefix)
}

// Shuffle randomizes the order of items in place and returns it.
func Shuffle[T any](items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Intersect returns the elements of a that also appear in b.
func Intersect[T comparable](a, b []T) []T {
	set := setOf(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, ok := set[item]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of a that do not appear in b.
func Difference[T comparable](a, b []T) []T {
	set := setOf(b)
	out := make([]T, 0)
	for _, item := range a {
		if _, ok := set[item]; !ok {
			out = append(out, item)
		}
	}
	return out
}

// FilterType returns the elements of items that hold a T.
func FilterType[T any](items []any) []T {
	out := make([]T, 0)
	for _, item := range items {
		if v, ok := item.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func setOf[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
