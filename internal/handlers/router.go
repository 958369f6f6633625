package handlers

import (
	"github.com/shuhuiluo/trivia-game/internal/config"
	"github.com/shuhuiluo/trivia-game/internal/middleware"
	"github.com/shuhuiluo/trivia-game/internal/services"
	"github.com/shuhuiluo/trivia-game/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires services, handlers and middleware into the full HTTP
// surface. Register/login/categories/leaderboard are public; everything
// else requires a session.
func NewRouter(db *gorm.DB, cfg *config.Config, hub *ws.Hub) *gin.Engine {
	authService := services.NewAuthService(db)
	sessionService := services.NewSessionService(db)
	gameService := services.NewGameService(db)
	statsService := services.NewStatsService(db)

	authHandler := NewAuthHandler(authService, sessionService, cfg)
	gameHandler := NewGameHandler(gameService, statsService, hub)
	statsHandler := NewStatsHandler(statsService)
	wsHandler := NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Static("/app", "./web")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/leaderboard", wsHandler.HandleLeaderboard)

	requireSession := middleware.SessionAuth(sessionService)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireSession, authHandler.Me)
		}

		api.GET("/categories", gameHandler.Categories)
		api.GET("/leaderboard", statsHandler.Leaderboard)

		game := api.Group("/game")
		game.Use(requireSession)
		{
			game.POST("/start", gameHandler.Start)
			game.POST("/answer", gameHandler.Answer)
		}

		api.GET("/stats", requireSession, statsHandler.Stats)
	}

	return r
}
