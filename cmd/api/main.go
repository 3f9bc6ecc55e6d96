package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/config"
	"jobboard-api/internal/database"
	"jobboard-api/internal/handlers"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Initialize Core Services (Dependencies)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	uploads := storage.NewUploads(cfg.UploadDir)
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService, issuer)
	userHandler := handlers.NewUserHandler(userService, profileService, uploads)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService, applicationService, uploads)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "x-api-key"}
	r.Use(cors.New(corsConfig))

	// 6. Static uploads + API routes
	r.Static("/uploads", cfg.UploadDir)
	handlers.Register(r, db, issuer, cfg.APIKey, authHandler, userHandler, companyHandler, jobHandler)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
