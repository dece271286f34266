package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// TMDbClient talks to The Movie Database API. It is the only component in
// the system that performs network I/O.
type TMDbClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

type movieListResponse struct {
	Page         int           `json:"page"`
	Results      []MovieRecord `json:"results"`
	TotalResults int           `json:"total_results"`
}

type MovieRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
}

type MovieDetailsRecord struct {
	MovieRecord
	Runtime int           `json:"runtime"`
	Tagline string        `json:"tagline"`
	Genres  []GenreRecord `json:"genres"`
}

type GenreRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func NewTMDbClient(token string) *TMDbClient {
	return &TMDbClient{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *TMDbClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *TMDbClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDb API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *TMDbClient) SearchMovies(ctx context.Context, query string) ([]MovieRecord, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("language", "en-US")
	params.Set("page", "1")

	var result movieListResponse
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *TMDbClient) TrendingMovies(ctx context.Context) ([]MovieRecord, error) {
	var result movieListResponse
	if err := c.get(ctx, "/trending/movie/day", nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *TMDbClient) GetMovie(ctx context.Context, movieID int) (*MovieDetailsRecord, error) {
	var details MovieDetailsRecord
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ImageURL builds a full poster URL for a TMDb image path.
func (c *TMDbClient) ImageURL(path string, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("https://image.tmdb.org/t/p/%s%s", size, path)
}
