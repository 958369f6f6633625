package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/shuhuiluo/trivia-game/internal/config"
	"github.com/shuhuiluo/trivia-game/internal/database"
	"github.com/shuhuiluo/trivia-game/internal/handlers"
	"github.com/shuhuiluo/trivia-game/internal/ws"

	"github.com/lmittmann/tint"
)

// @title           Trivia Wager API
// @version         1.0
// @description     Trivia game where users wager points on multiple-choice questions
// @host            localhost:8080
// @BasePath        /

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug})))

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	hub := ws.NewHub()
	r := handlers.NewRouter(db, cfg, hub)

	slog.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
