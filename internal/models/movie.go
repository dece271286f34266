package models

import "fmt"

// Source tags describing where a Movie record came from.
const (
	SourceSearch   = "Search Result"
	SourceTrending = "Trending"
)

type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	PosterPath  string   `json:"poster_path,omitempty"`
	ReleaseDate string   `json:"release_date"`
	Overview    string   `json:"overview"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	Source      string   `json:"source"`
	Genres      []string `json:"genres,omitempty"`
}

type MovieDetails struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	PosterPath  string   `json:"poster_path,omitempty"`
	ReleaseDate string   `json:"release_date"`
	Overview    string   `json:"overview"`
	Popularity  float64  `json:"popularity"`
	VoteAverage float64  `json:"vote_average"`
	Runtime     int      `json:"runtime,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// Text renders the details block shown to the user.
func (d MovieDetails) Text() string {
	return fmt.Sprintf("Title: %s\nRelease Date: %s\nRating: %g\n\n%s",
		d.Title, d.ReleaseDate, d.VoteAverage, d.Overview)
}
