package api

import (
	"encoding/json"
	"log"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *App) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !app.Auth.Register(req.Username, req.Password) {
		writeError(w, http.StatusConflict, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful"})
}

func (app *App) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !app.Auth.Authenticate(req.Username, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	userID, ok := app.Auth.UserID(req.Username)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, _, err := app.Sessions.Create(userID, req.Username)
	if err != nil {
		log.Printf("api: creating session for %q failed: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (app *App) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	app.Sessions.Destroy(bearerToken(r))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
