package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testProfile struct {
	Name    string
	private string
}

type testUser struct {
	Profile *testProfile
	Tags    []string
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"name": "Alice",
		"user": map[string]any{
			"profile": map[string]any{
				"name": "Bob",
			},
		},
		"config": map[string]string{"env": "production"},
		"list":   []any{"zero", map[string]any{"id": 7}},
		"zero":   0,
		"empty":  "",
		"off":    false,
		"nil":    nil,
		"typed":  map[string]int{"count": 3},
		"struct": testUser{Profile: &testProfile{Name: "Carol", private: "x"}, Tags: []string{"a", "b"}},
		"Mixed":  "case",
		"0":      "index zero",
	}

	tests := []struct {
		name     string
		path     string
		fold     bool
		expected any
		found    bool
	}{
		{name: "simple key", path: "name", expected: "Alice", found: true},
		{name: "nested path", path: "user.profile.name", expected: "Bob", found: true},
		{name: "string map", path: "config.env", expected: "production", found: true},
		{name: "slice index", path: "list.0", expected: "zero", found: true},
		{name: "slice then map", path: "list.1.id", expected: 7, found: true},
		{name: "slice out of range", path: "list.5", found: false},
		{name: "slice non-numeric", path: "list.first", found: false},
		{name: "digit key", path: "0", expected: "index zero", found: true},
		{name: "missing key", path: "missing", found: false},
		{name: "missing nested", path: "user.settings.theme", found: false},
		{name: "zero value resolves", path: "zero", expected: 0, found: true},
		{name: "traverse through zero", path: "zero.x", found: false},
		{name: "traverse through empty string", path: "empty.x", found: false},
		{name: "traverse through false", path: "off.x", found: false},
		{name: "nil value resolves", path: "nil", expected: nil, found: true},
		{name: "traverse through nil", path: "nil.x", found: false},
		{name: "traverse into string", path: "name.first", found: false},
		{name: "typed map", path: "typed.count", expected: 3, found: true},
		{name: "struct field through pointer", path: "struct.Profile.Name", expected: "Carol", found: true},
		{name: "unexported struct field", path: "struct.Profile.private", found: false},
		{name: "struct slice field", path: "struct.Tags.1", expected: "b", found: true},
		{name: "empty segment", path: "user..name", found: false},
		{name: "exact case required", path: "mixed", found: false},
		{name: "fold case map", path: "MIXED", fold: true, expected: "case", found: true},
		{name: "fold case nested", path: "USER.Profile.NAME", fold: true, expected: "Bob", found: true},
		{name: "fold case struct field", path: "struct.profile.name", fold: true, expected: "Carol", found: true},
		{name: "fold case string map", path: "config.ENV", fold: true, expected: "production", found: true},
		{name: "fold case typed map", path: "typed.COUNT", fold: true, expected: 3, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := Lookup(data, tt.path, tt.fold)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, val)
			} else {
				assert.Nil(t, val)
			}
		})
	}
}

func TestLookup_NilData(t *testing.T) {
	_, ok := Lookup(nil, "anything", false)
	assert.False(t, ok)
}

func TestLookup_FoldCasePrefersExactKey(t *testing.T) {
	data := map[string]any{"name": "lower", "Name": "title", "NAME": "upper"}

	val, ok := Lookup(data, "Name", true)
	assert.True(t, ok)
	assert.Equal(t, "title", val)

	// No exact match: first key in sorted order wins ("NAME" < "Name" < "name").
	val, ok = Lookup(data, "nAmE", true)
	assert.True(t, ok)
	assert.Equal(t, "upper", val)
}

func TestIsFalsy(t *testing.T) {
	var nilPtr *testProfile

	falsy := []any{nil, false, 0, int8(0), uint(0), 0.0, float32(0), "", nilPtr}
	for _, v := range falsy {
		assert.True(t, IsFalsy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, 1, -1, 0.5, "x", map[string]any{}, []any{}, &testProfile{}, testUser{}}
	for _, v := range truthy {
		assert.False(t, IsFalsy(v), "%#v should be truthy", v)
	}
}
