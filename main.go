package main

import (
	"log"
	"time"

	"sitebuilder-app/config"
	"sitebuilder-app/database"
	routes "sitebuilder-app/internal/app/http"
	"sitebuilder-app/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	if err := logging.Init(config.LOG_DIR); err != nil {
		log.Fatal("Failed to init logging:", err)
	}

	database.InitDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	logging.L.Infow("server starting", "port", config.PORT)
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal(err)
	}
}
