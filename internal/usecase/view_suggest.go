package usecase

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 5

// closestName picks the candidate with the smallest edit distance to name,
// if it is close enough to be a plausible typo.
func closestName(name string, candidates []string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return "", false
	}

	best, bestDistance := "", -1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(target, strings.ToLower(candidate))
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	if bestDistance < 0 || bestDistance > len([]rune(target))/2+1 {
		return "", false
	}
	return best, true
}

// fuzzySuggestions ranks candidates that contain the query's characters in order.
func fuzzySuggestions(query string, candidates []string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, candidates)

	seen := make(map[string]struct{}, maxSuggestions)
	out := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if _, ok := seen[match.Str]; ok {
			continue
		}
		seen[match.Str] = struct{}{}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	if len(out) == 0 {
		if near, ok := closestName(query, candidates); ok {
			out = append(out, near)
		}
	}
	return out
}

func didYouMean(name string, candidates []string) string {
	if near, ok := closestName(name, candidates); ok {
		return ", did you mean " + near + "?"
	}
	return ""
}

// joinNames renders "A and B" or "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
