package dispatchers

import (
	"sort"
	"strings"
)

const maxSuggestionDistance = 3

// levenshtein is the case-insensitive edit distance between a and b,
// counted in runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

type suggestion struct {
	path     string
	prefix   bool
	distance int
}

// FindSimilarCommands suggests commands for a name that is not a child of
// node. Commands nested in a group are offered by their path below node, so
// "brick clear" suggests "cache clear". Names starting with input rank
// first, then the closest by edit distance.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || len(node.Children) == 0 {
		return nil
	}

	var suggestions []suggestion
	consider := func(path, name string, exact bool) {
		dist := min(levenshtein(input, name), levenshtein(input, path))
		prefix := len([]rune(input)) > 1 && strings.HasPrefix(strings.ToLower(path), strings.ToLower(input))
		if dist > maxSuggestionDistance && !prefix {
			return
		}
		if dist == 0 && !exact {
			return
		}
		suggestions = append(suggestions, suggestion{path: path, prefix: prefix, distance: dist})
	}

	for name, child := range node.Children {
		consider(name, name, false)
		for sub := range child.Children {
			consider(name+" "+sub, sub, true)
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.prefix != b.prefix {
			return a.prefix
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.path < b.path
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.path
	}
	return result
}
