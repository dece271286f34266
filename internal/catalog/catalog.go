package catalog

import (
	"context"
	"log"
	"strings"

	"github.com/flickfinder/flickfinder/internal/models"
)

// DetailsErrorMessage is returned by Details for any failure.
const DetailsErrorMessage = "Error fetching movie details."

// Client is the catalog contract the rest of the system depends on.
// Implementations never return an error to callers: failures degrade to an
// empty list or a sentinel message.
type Client interface {
	Search(ctx context.Context, query string) []models.Movie
	Trending(ctx context.Context) []models.Movie
	Details(ctx context.Context, movieID int) string
}

// Service wraps a TMDbClient and enforces the degrade-at-the-boundary
// contract: network and parse failures never escape past this type.
type Service struct {
	client *TMDbClient
}

func NewService(client *TMDbClient) *Service {
	return &Service{client: client}
}

// Search looks up movies by title. An empty or whitespace query returns an
// empty list without touching the network.
func (s *Service) Search(ctx context.Context, query string) []models.Movie {
	if strings.TrimSpace(query) == "" {
		return []models.Movie{}
	}

	records, err := s.client.SearchMovies(ctx, query)
	if err != nil {
		log.Printf("catalog: search %q failed: %v", query, err)
		return []models.Movie{}
	}
	return mapMovies(records, models.SourceSearch)
}

// Trending returns the daily trending list, empty on failure.
func (s *Service) Trending(ctx context.Context) []models.Movie {
	records, err := s.client.TrendingMovies(ctx)
	if err != nil {
		log.Printf("catalog: trending failed: %v", err)
		return []models.Movie{}
	}
	return mapMovies(records, models.SourceTrending)
}

// Details returns the rendered details block for a movie, or a fixed error
// message when the movie cannot be fetched.
func (s *Service) Details(ctx context.Context, movieID int) string {
	if movieID <= 0 {
		return DetailsErrorMessage
	}

	record, err := s.client.GetMovie(ctx, movieID)
	if err != nil {
		log.Printf("catalog: details for %d failed: %v", movieID, err)
		return DetailsErrorMessage
	}

	details := models.MovieDetails{
		ID:          record.ID,
		Title:       record.Title,
		PosterPath:  record.PosterPath,
		ReleaseDate: orDefault(record.ReleaseDate, "Unknown"),
		Overview:    orDefault(record.Overview, "No description available."),
		Popularity:  record.Popularity,
		VoteAverage: record.VoteAverage,
		Runtime:     record.Runtime,
		Tagline:     record.Tagline,
	}
	for _, g := range record.Genres {
		details.Genres = append(details.Genres, g.Name)
	}
	return details.Text()
}

func mapMovies(records []MovieRecord, source string) []models.Movie {
	movies := make([]models.Movie, 0, len(records))
	for _, r := range records {
		movies = append(movies, models.Movie{
			ID:          r.ID,
			Title:       r.Title,
			PosterPath:  r.PosterPath,
			ReleaseDate: orDefault(r.ReleaseDate, "Unknown"),
			Overview:    orDefault(r.Overview, "No description available."),
			Popularity:  r.Popularity,
			VoteAverage: r.VoteAverage,
			Source:      source,
			// The list endpoints carry no genre data; the field stays
			// empty until the details response is wired into profiles.
			Genres: nil,
		})
	}
	return movies
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
