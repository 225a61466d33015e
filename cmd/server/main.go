package main

import (
	"os"

	"finch/internal/db"
	"finch/internal/handlers"
	"finch/internal/logging"
	"finch/internal/router"
	"finch/internal/services"
	"finch/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := logging.NewLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init(log)

	// Wire the engagement core against the gorm store. Everything is
	// constructed once here and injected; no service reaches for globals.
	st := store.New(db.DB)
	engagements := services.NewEngagementManager(st, log)
	likes := services.NewLikeService(st, engagements, log)
	comments := services.NewCommentService(st, engagements, log)
	users := services.NewUserService(log)
	posts := services.NewPostService(log)
	follows := services.NewFollowService(log)

	// Initialize Gin
	r := gin.Default()

	router.RegisterRoutes(r,
		handlers.NewAuthHandler(users),
		handlers.NewUserHandler(users),
		handlers.NewPostHandler(posts),
		handlers.NewLikeHandler(likes),
		handlers.NewCommentHandler(comments),
		handlers.NewEngagementHandler(engagements),
		handlers.NewFollowHandler(follows),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("finch server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
