package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flickfinder/flickfinder/internal/auth"
	"github.com/flickfinder/flickfinder/internal/catalog"
	"github.com/flickfinder/flickfinder/internal/session"
)

type App struct {
	Catalog  catalog.Client
	Auth     *auth.Service
	Sessions *session.Manager
}

type contextKey string

const sessionContextKey contextKey = "session"

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RequireSession resolves the bearer token into a live session and rejects
// requests that carry none.
func (app *App) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}

		sess, ok := app.Sessions.Lookup(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (app *App) session(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionContextKey).(*session.Session)
	return sess
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
