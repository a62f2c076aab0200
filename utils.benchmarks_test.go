package utils

import (
	"fmt"
	"strings"
	"testing"
)

// =============================================================================
// RENDER BENCHMARKS
// =============================================================================

func BenchmarkRender_Simple(b *testing.B) {
	r := MustNew()
	data := map[string]any{"user": "Alice"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Render("Hello, {user}!", data)
	}
}

func BenchmarkRender_Nested(b *testing.B) {
	r := MustNew()
	data := map[string]any{
		"user": map[string]any{
			"profile": map[string]any{"name": "Alice", "email": "alice@example.com"},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Render("{user.profile.name} <{{user.profile.email}}>", data)
	}
}

func BenchmarkRender_NoPlaceholders(b *testing.B) {
	r := MustNew()
	source := strings.Repeat("plain text without any placeholders ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Render(source, nil)
	}
}

func BenchmarkRender_Many(b *testing.B) {
	r := MustNew()
	data := make(map[string]any, 100)
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("k%d", i)
		data[key] = i
		sb.WriteString("{" + key + "} {{" + key + "}} ")
	}
	source := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Render(source, data)
	}
}

// =============================================================================
// HELPER BENCHMARKS
// =============================================================================

func BenchmarkHashCyrb53(b *testing.B) {
	s := strings.Repeat("abc", 100)
	for i := 0; i < b.N; i++ {
		_ = HashCyrb53(s, 0)
	}
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = HashPasswordWithSalt("password", "salt")
	}
}
