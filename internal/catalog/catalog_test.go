package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/flickfinder/flickfinder/internal/models"
)

func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewTMDbClient("test-token")
	client.SetBaseURL(server.URL)
	return NewService(client), server
}

func TestService_Search(t *testing.T) {
	var gotAuth string
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/search/movie" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("query"); q != "Inception" {
			t.Errorf("Expected query Inception, got %q", q)
		}
		fmt.Fprint(w, `{"page":1,"results":[
			{"id":27205,"title":"Inception","release_date":"2010-07-15","overview":"A thief.","poster_path":"/ince.jpg","popularity":88.5,"vote_average":8.4},
			{"id":64956,"title":"Inception: The Cobol Job"}
		],"total_results":2}`)
	}))
	defer server.Close()

	movies := service.Search(context.Background(), "Inception")

	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if len(movies) != 2 {
		t.Fatalf("Expected 2 movies, got %d", len(movies))
	}

	first := movies[0]
	if first.ID != 27205 || first.Title != "Inception" {
		t.Errorf("Unexpected first result: %+v", first)
	}
	if first.Source != models.SourceSearch {
		t.Errorf("Expected source %q, got %q", models.SourceSearch, first.Source)
	}

	second := movies[1]
	if second.ReleaseDate != "Unknown" {
		t.Errorf("Expected missing release date to default to Unknown, got %q", second.ReleaseDate)
	}
	if second.Overview != "No description available." {
		t.Errorf("Expected default overview, got %q", second.Overview)
	}
}

func TestService_SearchEmptyQueryMakesNoRequest(t *testing.T) {
	var calls int32
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer server.Close()

	for _, query := range []string{"", "   ", "\t"} {
		movies := service.Search(context.Background(), query)
		if len(movies) != 0 {
			t.Errorf("Query %q: expected empty result, got %d movies", query, len(movies))
		}
	}

	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected zero network calls for blank queries, got %d", n)
	}
}

func TestService_SearchMalformedJSON(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": "not-a-number"`)
	}))
	defer server.Close()

	movies := service.Search(context.Background(), "Inception")
	if movies == nil {
		t.Fatal("Expected an empty slice, not nil")
	}
	if len(movies) != 0 {
		t.Errorf("Expected empty result for malformed body, got %d movies", len(movies))
	}
}

func TestService_SearchServerError(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if movies := service.Search(context.Background(), "Inception"); len(movies) != 0 {
		t.Errorf("Expected empty result on 500, got %d movies", len(movies))
	}
}

func TestService_Trending(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/day" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"results":[{"id":603,"title":"The Matrix","vote_average":8.2}]}`)
	}))
	defer server.Close()

	movies := service.Trending(context.Background())
	if len(movies) != 1 {
		t.Fatalf("Expected 1 movie, got %d", len(movies))
	}
	if movies[0].Source != models.SourceTrending {
		t.Errorf("Expected source %q, got %q", models.SourceTrending, movies[0].Source)
	}
}

func TestService_TrendingFailure(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	if movies := service.Trending(context.Background()); len(movies) != 0 {
		t.Errorf("Expected empty trending list on failure, got %d movies", len(movies))
	}
}

func TestService_Details(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"id":550,"title":"Fight Club","release_date":"1999-10-15","overview":"An insomniac.","vote_average":8.4,"runtime":139,"genres":[{"id":18,"name":"Drama"}]}`)
	}))
	defer server.Close()

	details := service.Details(context.Background(), 550)

	if !strings.Contains(details, "Title: Fight Club") {
		t.Errorf("Details should contain the title, got %q", details)
	}
	if !strings.Contains(details, "Release Date: 1999-10-15") {
		t.Errorf("Details should contain the release date, got %q", details)
	}
	if !strings.HasSuffix(details, "An insomniac.") {
		t.Errorf("Details should end with the overview, got %q", details)
	}
}

func TestService_DetailsFailure(t *testing.T) {
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if got := service.Details(context.Background(), 999999); got != DetailsErrorMessage {
		t.Errorf("Expected sentinel message, got %q", got)
	}
}

func TestService_DetailsInvalidID(t *testing.T) {
	var calls int32
	service, server := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	for _, id := range []int{0, -1} {
		if got := service.Details(context.Background(), id); got != DetailsErrorMessage {
			t.Errorf("ID %d: expected sentinel message, got %q", id, got)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected no network calls for non-positive ids, got %d", n)
	}
}
