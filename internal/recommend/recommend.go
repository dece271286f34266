// Package recommend filters a candidate pool against a user's keyword
// profile. It is a stable filter: output order is candidate order, never
// re-ranked by rating or popularity.
package recommend

import (
	"strings"

	"github.com/flickfinder/flickfinder/internal/models"
)

// Recommend returns the candidates whose lowercased title contains any
// profile token as a substring, preserving candidate order and skipping IDs
// that already appeared. An empty profile yields an empty result: with zero
// saved movies there is no signal to personalize on.
func Recommend(profile map[string]struct{}, candidates []models.Movie) []models.Movie {
	recommendations := []models.Movie{}
	if len(profile) == 0 {
		return recommendations
	}

	seen := make(map[int]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate.ID]; dup {
			continue
		}
		if matches(candidate, profile) {
			seen[candidate.ID] = struct{}{}
			recommendations = append(recommendations, candidate)
		}
	}
	return recommendations
}

func matches(movie models.Movie, profile map[string]struct{}) bool {
	title := strings.ToLower(movie.Title)
	for token := range profile {
		if strings.Contains(title, token) {
			return true
		}
	}
	return false
}
