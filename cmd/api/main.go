package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jesap-it/recruiting-backend/internal/config"
	"github.com/jesap-it/recruiting-backend/internal/database"
	"github.com/jesap-it/recruiting-backend/internal/handlers"
	"github.com/jesap-it/recruiting-backend/internal/services"
	"github.com/jesap-it/recruiting-backend/internal/sheets"
	"github.com/jesap-it/recruiting-backend/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.PostgresDSN)
	store := database.NewCandidateStore(db)

	// 3. Resume Blob Store
	// Drive when a folder is configured, local uploads dir otherwise.
	ctx := context.Background()
	var blobs services.BlobStore = storage.NewDiskStore(cfg.UploadsDir)
	if cfg.DriveFolderID != "" {
		driveStore, err := storage.NewDriveStore(ctx, cfg.GoogleCredentialsPath, cfg.DriveFolderID)
		if err != nil {
			log.Printf("⚠️ Drive store unavailable (%v), falling back to local uploads", err)
		} else {
			log.Println("✅ Google Drive store connected.")
			blobs = driveStore
		}
	}

	// 4. Spreadsheet Mirror
	var mirror services.Mirror
	if cfg.SpreadsheetID != "" {
		sheetsMirror, err := sheets.NewSheetsMirror(ctx, cfg.GoogleCredentialsPath, cfg.SpreadsheetID, cfg.SheetRange)
		if err != nil {
			log.Printf("⚠️ Sheets mirror unavailable: %v", err)
		} else {
			log.Println("✅ Sheets mirror connected.")
			mirror = sheetsMirror
		}
	} else {
		log.Println("⚠️ SPREADSHEET_ID not set, sheet mirroring disabled")
	}

	// 5. Services & Handlers
	applicationService := services.NewApplicationService(store, blobs, mirror, cfg.MaxResumeBytes, cfg.ExternalTimeout)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	seasonGate := handlers.NewSeasonGate(cfg.RecruitingSeason)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	r.GET("/", seasonGate.FormPage)
	r.GET("/closed-season", seasonGate.ClosedSeason)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/schema", applicationHandler.Schema)
		api.POST("/submit", applicationHandler.Submit)
		api.GET("/applications", applicationHandler.List)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
