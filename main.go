package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"onboarding_backend/config"
	"onboarding_backend/db"
	"onboarding_backend/handlers"
	"onboarding_backend/middleware"
	"onboarding_backend/models"
)

func main() {
	cfg := config.Load()

	handlers.StorageDir = cfg.UploadDir
	handlers.DevMode = cfg.Development()
	handlers.InitStorage()

	db.Init(cfg)
	if err := models.Migrate(db.DB); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logrus.StandardLogger()), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/save-employee", handlers.SaveEmployee)
	r.GET("/employees", handlers.ListEmployees)
	r.POST("/download", handlers.DownloadDocument)
	r.POST("/download-all", handlers.DownloadAllDocuments)

	// Uploaded documents are served statically, same as the list endpoint's
	// rewritten URLs expect.
	r.Static("/uploads", cfg.UploadDir)

	logrus.Info("Server starting on :", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Server failed to start: ", err)
	}
}
