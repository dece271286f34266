package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flickfinder/flickfinder/internal/models"
)

type addMovieRequest struct {
	MovieID int `json:"movie_id"`
}

func (app *App) ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	movies := app.session(r).Collections.Favorites()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": movies,
		"titles":  movieTitles(movies),
	})
}

func (app *App) ListWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	movies := app.session(r).Collections.Watchlist()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": movies,
		"titles":  movieTitles(movies),
	})
}

func (app *App) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	app.addToCollection(w, r, "favorites", app.session(r).Collections.AddFavorite)
}

func (app *App) AddToWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	app.addToCollection(w, r, "your watchlist", app.session(r).Collections.AddToWatchlist)
}

func (app *App) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	app.removeFromCollection(w, r, app.session(r).Collections.RemoveFavorite)
}

func (app *App) RemoveFromWatchlistHandler(w http.ResponseWriter, r *http.Request) {
	app.removeFromCollection(w, r, app.session(r).Collections.RemoveFromWatchlist)
}

// addToCollection resolves the requested movie against the results the user
// was last shown, then records the add outcome as a user-facing message.
func (app *App) addToCollection(w http.ResponseWriter, r *http.Request, name string, add func(models.Movie) models.AddOutcome) {
	var req addMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movie, found := app.session(r).FindInLastResults(req.MovieID)
	if !found {
		writeError(w, http.StatusNotFound, "Selected movie not found")
		return
	}

	outcome := add(movie)
	message := fmt.Sprintf("%s added to %s!", movie.Title, name)
	if outcome == models.AlreadyPresent {
		message = fmt.Sprintf("%s is already in %s.", movie.Title, name)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"outcome": outcome.String(),
		"message": message,
	})
}

func (app *App) removeFromCollection(w http.ResponseWriter, r *http.Request, remove func(int) models.RemoveOutcome) {
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	outcome := remove(movieID)
	writeJSON(w, http.StatusOK, map[string]string{"outcome": outcome.String()})
}
