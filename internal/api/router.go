package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *App) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", HealthHandler)
	r.Post("/api/register", app.RegisterHandler)
	r.Post("/api/login", app.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(app.RequireSession)

		r.Post("/api/logout", app.LogoutHandler)

		r.Get("/api/movies/search", app.SearchMoviesHandler)
		r.Get("/api/movies/trending", app.TrendingMoviesHandler)
		r.Get("/api/movies/{id}", app.MovieDetailsHandler)

		r.Get("/api/favorites", app.ListFavoritesHandler)
		r.Post("/api/favorites", app.AddFavoriteHandler)
		r.Delete("/api/favorites/{id}", app.RemoveFavoriteHandler)

		r.Get("/api/watchlist", app.ListWatchlistHandler)
		r.Post("/api/watchlist", app.AddToWatchlistHandler)
		r.Delete("/api/watchlist/{id}", app.RemoveFromWatchlistHandler)

		r.Get("/api/searches/recent", app.RecentSearchesHandler)
		r.Get("/api/recommendations", app.RecommendationsHandler)
	})

	return r
}
