package main

import (
	"log"

	"github.com/delbyte/codeolympics/internal/challenge"
	"github.com/delbyte/codeolympics/internal/config"
	"github.com/delbyte/codeolympics/internal/database"
	"github.com/delbyte/codeolympics/internal/discord"
	"github.com/delbyte/codeolympics/internal/handlers"
	"github.com/delbyte/codeolympics/internal/middleware"
	"github.com/delbyte/codeolympics/internal/services"
	"github.com/delbyte/codeolympics/internal/store"
	"github.com/delbyte/codeolympics/internal/ws"

	_ "github.com/delbyte/codeolympics/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           Code Olympics API
// @version         1.0
// @description     Signup and challenge-draw backend for the Code Olympics hackathon
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var db *gorm.DB
	if !cfg.DevBypass && cfg.DBHost != "" {
		db = database.Connect(cfg)
		database.AutoMigrate(db)
	}

	participantStore := store.New(cfg, db)

	hub := ws.NewHub()
	generator := challenge.NewGenerator()

	var notifier services.Announcer
	if cfg.DiscordWebhookURL != "" {
		notifier = discord.NewClient(cfg.DiscordWebhookURL)
	} else {
		log.Println("DISCORD_WEBHOOK_URL not set, accept announcements disabled")
	}

	participantService := services.NewParticipantService(participantStore)
	playService := services.NewPlayService(participantStore, generator, hub, notifier, cfg.DiscordInviteURL)

	participantHandler := handlers.NewParticipantHandler(participantService, playService)
	playHandler := handlers.NewPlayHandler(playService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/play/:token", wsHandler.HandleWebSocket)
	r.GET("/challenge", playHandler.ChallengeEntry)

	api := r.Group("/api/v1")
	{
		api.POST("/participants", participantHandler.Join)

		play := api.Group("/play")
		{
			play.GET("/state", playHandler.GetState)
			play.POST("/draw", playHandler.Draw)
			play.POST("/accept", playHandler.Accept)
		}

		if db != nil {
			authService := services.NewAuthService(db, cfg.JWTSecret)
			authHandler := handlers.NewAuthHandler(authService)
			adminHandler := handlers.NewAdminHandler(db)

			auth := api.Group("/auth")
			{
				auth.POST("/register", authHandler.Register)
				auth.POST("/login", authHandler.Login)
			}

			admin := api.Group("/admin")
			admin.Use(middleware.JWTAuth(authService))
			{
				admin.GET("/participants", adminHandler.ListParticipants)
				admin.GET("/stats", adminHandler.GetStats)
			}
		} else {
			log.Println("database not connected, organizer endpoints disabled")
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
