package handlers

import (
	"context"
	"log"

	"shoplink/database"
	"shoplink/middleware"
	"shoplink/models"

	"github.com/gofiber/fiber/v2"
)

// HandleGetShopDashboard fetches summary data for the shopkeeper dashboard:
// today's revenue and transaction count, distinct items sold today, and the
// latest stored forecast text.
// GET /api/v1/shopkeeper/dashboard
func HandleGetShopDashboard(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	shopID := claims.UserID

	db := database.GetDB()
	ctx := context.Background()

	var summary models.ShopDashboardSummary

	err = db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COUNT(*), COUNT(DISTINCT item)
		FROM sales
		WHERE shop_id = $1 AND created_at >= date_trunc('day', now())
	`, shopID).Scan(&summary.TodayRevenue, &summary.TodayTransactions, &summary.ItemsSoldToday)
	if err != nil {
		log.Printf("Error fetching today's sales summary for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch dashboard summary"})
	}

	err = db.QueryRow(ctx, `
		SELECT ai_forecast, last_forecast_at
		FROM shops
		WHERE id = $1
	`, shopID).Scan(&summary.AiForecast, &summary.LastForecastAt)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Shop not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}
