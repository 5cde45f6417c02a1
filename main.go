package main

import (
	"log"

	"shoplink/config"
	"shoplink/database"
	"shoplink/forecast"
	"shoplink/handlers"
	"shoplink/routes"
	"shoplink/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.Load()
	if config.AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Initialize database
	database.Connect(config.AppConfig.DatabaseURL)
	defer database.Close()

	// Wire the forecast pipeline
	forecastSvc := forecast.NewService(
		database.NewSalesHistory(database.GetDB()),
		forecast.NewHTTPPredictor(config.AppConfig.PredictorURL),
		forecast.NewGeminiSummarizer(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel),
	)
	handlers.InitForecast(forecastSvc)

	// Nightly forecast refresh
	sched := scheduler.New(database.GetDB(), forecastSvc)
	if err := sched.Register(config.AppConfig.ForecastCron); err != nil {
		log.Fatalf("Failed to register forecast refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
