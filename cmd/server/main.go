package main

import (
	"log"
	"time"

	"financial-dashboard-backend/internal/config"
	"financial-dashboard-backend/internal/db"
	"financial-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer logger.Sync()

	gdb := config.InitDB()

	if err := db.Migrate(gdb, config.BuildDSN()); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, gdb, logger)

	r.Run(":8080")
}
