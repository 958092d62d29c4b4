package main

import (
	"os"
	"path/filepath"

	"car-rental-backend/config"
	"car-rental-backend/ledger"
	"car-rental-backend/middleware"
	reservation_routes "car-rental-backend/reservations/routes"
	"car-rental-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, using process environment", zap.Error(err))
	}

	// Multipart bodies carry two attachments of up to 5MB each
	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024,
	})

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	port := config.GetEnv("PORT")
	if port == "" {
		port = "3000"
		config.Logger.Warn("PORT not set, using default: 3000")
	}

	adminKey := config.GetEnv("ADMIN_KEY")
	if adminKey == "" {
		adminKey = "CarRental269@"
		config.Logger.Warn("ADMIN_KEY not set, using built-in default")
	}

	uploadDir := config.GetEnv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	ledgerPath := config.GetEnv("EXCEL_FILE")
	if ledgerPath == "" {
		ledgerPath = filepath.Join(uploadDir, "reservations.xlsx")
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		config.Logger.Fatal("Failed to create upload directory", zap.Error(err))
	}
	if err := os.MkdirAll(filepath.Dir(ledgerPath), 0755); err != nil {
		config.Logger.Fatal("Failed to create ledger directory", zap.Error(err))
	}

	// Serve static files
	app.Static("/uploads", "./"+uploadDir)
	app.Static("/public", "./public")

	store := ledger.NewStore(ledgerPath, config.Logger)
	fileStorage := utils.NewLocalFileStorage(uploadDir)

	// Routes
	reservation_routes.ReservationRouterInit(app, store, fileStorage, adminKey)

	// Background cleanup of crash-orphaned ledger temp files
	utils.RunScheduledCleanup(ledgerPath)

	// Start the application
	config.Logger.Info("Server starting",
		zap.String("port", port),
		zap.String("ledger", ledgerPath),
	)
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
