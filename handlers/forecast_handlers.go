package handlers

import (
	"context"
	"log"

	"shoplink/forecast"
	"shoplink/middleware"

	"github.com/gofiber/fiber/v2"
)

// ForecastRunner generates the weekly demand forecast for a shop.
// *forecast.Service satisfies it; tests substitute a fake.
type ForecastRunner interface {
	WeeklyForecast(ctx context.Context, shopID string) (*forecast.Result, error)
}

var forecastSvc ForecastRunner

// InitForecast wires the forecast service used by the forecast endpoint.
func InitForecast(svc ForecastRunner) {
	forecastSvc = svc
}

// HandleGetWeeklyForecast runs the demand forecast pipeline for the
// authenticated shopkeeper's shop.
// GET /api/v1/shopkeeper/forecast
func HandleGetWeeklyForecast(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}

	if forecastSvc == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Forecast service not configured"})
	}

	result, err := forecastSvc.WeeklyForecast(c.Context(), claims.UserID)
	if err != nil {
		log.Printf("Error generating forecast for shop %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate forecast"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}
