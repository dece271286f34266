package main

import (
	"log"
	"net/http"

	"github.com/flickfinder/flickfinder/internal/api"
	"github.com/flickfinder/flickfinder/internal/auth"
	"github.com/flickfinder/flickfinder/internal/catalog"
	"github.com/flickfinder/flickfinder/internal/config"
	"github.com/flickfinder/flickfinder/internal/database"
	"github.com/flickfinder/flickfinder/internal/session"
)

func main() {
	cfg := config.Load()

	if cfg.TMDbToken == "" {
		log.Printf("Warning: TMDB_API_TOKEN not set; catalog requests will degrade to empty results")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewDB(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	userRepo := database.NewUserRepository(db)
	authService := auth.NewService(userRepo)

	tmdbClient := catalog.NewTMDbClient(cfg.TMDbToken)
	if cfg.TMDbBaseURL != "" {
		tmdbClient.SetBaseURL(cfg.TMDbBaseURL)
	}
	catalogService := catalog.NewService(tmdbClient)

	sessions := session.NewManager(cfg.JWTSecret)

	app := &api.App{
		Catalog:  catalogService,
		Auth:     authService,
		Sessions: sessions,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Database path: %s", cfg.DBPath)

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
