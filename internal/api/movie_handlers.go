package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/flickfinder/flickfinder/internal/models"
	"github.com/flickfinder/flickfinder/internal/profile"
	"github.com/flickfinder/flickfinder/internal/recommend"
)

func (app *App) SearchMoviesHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "Please enter a movie name")
		return
	}

	sess := app.session(r)
	movies := app.Catalog.Search(r.Context(), query)
	sess.RecordQuery(query)
	sess.SetLastResults(movies)

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": movies})
}

func (app *App) TrendingMoviesHandler(w http.ResponseWriter, r *http.Request) {
	sess := app.session(r)
	movies := app.Catalog.Trending(r.Context())
	sess.SetLastResults(movies)

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": movies})
}

func (app *App) MovieDetailsHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	details := app.Catalog.Details(r.Context(), movieID)
	writeJSON(w, http.StatusOK, map[string]string{"details": details})
}

func (app *App) RecentSearchesHandler(w http.ResponseWriter, r *http.Request) {
	sess := app.session(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{"searches": sess.RecentQueries()})
}

// RecommendationsHandler derives the user's keyword profile from their
// saved movies and filters a fresh trending pool with it.
func (app *App) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	sess := app.session(r)
	store := sess.Collections

	tokens := profile.Extract(store.Favorites(), store.Watchlist())
	candidates := app.Catalog.Trending(r.Context())
	recommendations := recommend.Recommend(tokens, candidates)

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": recommendations})
}

func movieTitles(movies []models.Movie) []string {
	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		titles = append(titles, m.Title)
	}
	return titles
}
