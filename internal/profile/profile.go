// Package profile derives a keyword set from the movies a user has saved.
// The set is recomputed on demand and never cached across requests.
package profile

import (
	"strings"
	"unicode"

	"github.com/flickfinder/flickfinder/internal/models"
)

// minTokenLength filters out trivial words like "a" and "of".
const minTokenLength = 3

// Extract builds the token set for a user from their favorites and
// watchlist. Titles (and genre tokens, when a movie carries any) are split
// on non-alphanumeric boundaries, lowercased, and filtered by length. The
// result is independent of the order of the input collections.
func Extract(favorites, watchlist []models.Movie) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, list := range [][]models.Movie{favorites, watchlist} {
		for _, movie := range list {
			tokenize(movie.Title, tokens)
			for _, genre := range movie.Genres {
				tokenize(genre, tokens)
			}
		}
	}
	return tokens
}

func tokenize(text string, tokens map[string]struct{}) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		if len([]rune(word)) < minTokenLength {
			continue
		}
		tokens[strings.ToLower(word)] = struct{}{}
	}
}
