package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret    string
	DatabaseURL  string
	PredictorURL string
	GeminiAPIKey string
	GeminiModel  string
	ForecastCron string
	Port         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from environment variables, applying defaults
// for the optional fields.
func Load() {
	AppConfig = Config{
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PredictorURL: getEnv("PREDICTOR_URL", "https://demandai-api.onrender.com"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		ForecastCron: getEnv("FORECAST_CRON", "0 30 2 * * *"),
		Port:         getEnv("PORT", "3000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
