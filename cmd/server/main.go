package main

import (
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/router"
	"trivia-api/internal/services"
	"trivia-api/internal/store"

	"github.com/gin-gonic/gin"
)

// @title           Trivia API
// @version         1.0
// @description     Questions, categories and quiz rounds for the trivia game
// @host            localhost:5000
// @BasePath        /

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode())

	db := database.Connect(cfg)
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	triviaService := services.NewTriviaService(store.NewGormStore(db))

	r := router.New(triviaService, router.Options{CORSOrigins: cfg.CORSOrigins})

	log.Printf("server starting on :%s (%s)", cfg.ServerPort, cfg.Env)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
