package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	envPath := filepath.Join("..", "..", ".env")
	_ = godotenv.Load(envPath)
}

func TestTMDbClient_SearchMovies(t *testing.T) {
	token := os.Getenv("TMDB_API_TOKEN")

	if token == "" {
		t.Skip("Skipping TMDb integration test: TMDB_API_TOKEN not set")
	}

	client := NewTMDbClient(token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := "The Matrix"
	results, err := client.SearchMovies(ctx, query)
	if err != nil {
		t.Fatalf("SearchMovies failed: %v", err)
	}

	if len(results) == 0 {
		t.Fatal("Expected at least one movie result, got none")
	}

	t.Logf("Found %d movie results for query '%s'", len(results), query)

	first := results[0]
	if first.Title == "" {
		t.Error("Expected first result to have a title")
	}
	if first.ID == 0 {
		t.Error("Expected first result to have a non-zero ID")
	}

	t.Logf("First result: %s (ID: %d, Release: %s, Rating: %.1f)",
		first.Title, first.ID, first.ReleaseDate, first.VoteAverage)
}

func TestTMDbClient_TrendingMovies(t *testing.T) {
	token := os.Getenv("TMDB_API_TOKEN")

	if token == "" {
		t.Skip("Skipping TMDb integration test: TMDB_API_TOKEN not set")
	}

	client := NewTMDbClient(token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	movies, err := client.TrendingMovies(ctx)
	if err != nil {
		t.Fatalf("TrendingMovies failed: %v", err)
	}

	if len(movies) == 0 {
		t.Fatal("Expected trending movies, got none")
	}

	t.Logf("Got %d trending movies, first: %s", len(movies), movies[0].Title)
}

func TestTMDbClient_GetMovie(t *testing.T) {
	token := os.Getenv("TMDB_API_TOKEN")

	if token == "" {
		t.Skip("Skipping TMDb integration test: TMDB_API_TOKEN not set")
	}

	client := NewTMDbClient(token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	details, err := client.GetMovie(ctx, 550)
	if err != nil {
		t.Fatalf("GetMovie failed: %v", err)
	}

	if details.Title == "" {
		t.Error("Expected movie details to have a title")
	}
	if len(details.Genres) == 0 {
		t.Error("Expected movie details to carry genres")
	}

	t.Logf("Details: %s (%s), runtime %d min", details.Title, details.ReleaseDate, details.Runtime)
}
