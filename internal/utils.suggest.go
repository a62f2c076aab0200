package internal

import (
	"slices"
	"strings"
)

// Suggestion limits
const (
	MinSuggestDistance = 2
)

// SuggestKeys proposes keys that exist in data near a path that failed to
// resolve. The parent of the last segment must resolve to a string-keyed map;
// suggestions are full paths, closest first.
func SuggestKeys(data map[string]any, path string, limit int) []string {
	parentPath, leaf := "", path
	if i := strings.LastIndex(path, PathSeparator); i >= 0 {
		parentPath, leaf = path[:i], path[i+1:]
	}

	var parent any = data
	if parentPath != "" {
		v, ok := Lookup(data, parentPath, false)
		if !ok {
			return nil
		}
		parent = v
	}

	var candidates []string
	switch m := parent.(type) {
	case map[string]any:
		candidates = keysOf(m)
	case map[string]string:
		candidates = keysOf(m)
	default:
		return nil
	}

	similar := SimilarStrings(leaf, candidates, limit)
	if parentPath == "" {
		return similar
	}
	for i, s := range similar {
		similar[i] = parentPath + PathSeparator + s
	}
	return similar
}

// SimilarStrings returns up to limit candidates within edit distance of
// target (compared case-insensitively), closest first. Ties keep sorted order.
func SimilarStrings(target string, candidates []string, limit int) []string {
	if len(candidates) == 0 || limit <= 0 {
		return nil
	}

	maxDistance := max(len([]rune(target))/2, MinSuggestDistance)
	lowered := strings.ToLower(target)

	type scored struct {
		key      string
		distance int
	}
	var matches []scored
	for _, c := range candidates {
		if c == target {
			continue
		}
		if d := levenshtein(lowered, strings.ToLower(c)); d <= maxDistance {
			matches = append(matches, scored{key: c, distance: d})
		}
	}

	slices.SortFunc(matches, func(a, b scored) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.key, b.key)
	})

	result := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		result = append(result, m.key)
	}
	return result
}

// levenshtein is the rune-wise edit distance between a and b.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
