package handlers

import (
	"context"
	"log"
	"sort"
	"strconv"

	"shoplink/database"
	"shoplink/middleware"
	"shoplink/models"
	"shoplink/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListShops lists all open shops. When the caller provides lat/lng
// query parameters each shop is annotated with its distance and the list is
// sorted nearest-first.
// GET /api/v1/shops?lat=..&lng=..
func HandleListShops(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, name, latitude, longitude, is_open, notice, rating, ai_forecast, last_forecast_at, created_at, updated_at
		FROM shops
		ORDER BY name
	`)
	if err != nil {
		log.Printf("Error listing shops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve shops"})
	}
	defer rows.Close()

	shops := []models.Shop{}
	for rows.Next() {
		var shop models.Shop
		if err := rows.Scan(&shop.ID, &shop.Name, &shop.Latitude, &shop.Longitude, &shop.IsOpen, &shop.Notice, &shop.Rating, &shop.AiForecast, &shop.LastForecastAt, &shop.CreatedAt, &shop.UpdatedAt); err != nil {
			log.Printf("Error scanning shop row: %v", err)
			continue
		}
		shops = append(shops, shop)
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr == nil && lngErr == nil {
		for i := range shops {
			d := utils.HaversineKm(lat, lng, shops[i].Latitude, shops[i].Longitude)
			shops[i].DistanceKm = &d
		}
		sort.SliceStable(shops, func(i, j int) bool {
			return *shops[i].DistanceKm < *shops[j].DistanceKm
		})
	}

	return c.JSON(fiber.Map{"status": "success", "data": shops})
}

// HandleGetShopByID returns a single shop with its product list.
// GET /api/v1/shops/:shopId
func HandleGetShopByID(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	shopID := c.Params("shopId")

	var shop models.Shop
	err := db.QueryRow(ctx, `
		SELECT id, name, latitude, longitude, is_open, notice, rating, ai_forecast, last_forecast_at, created_at, updated_at
		FROM shops
		WHERE id = $1
	`, shopID).Scan(&shop.ID, &shop.Name, &shop.Latitude, &shop.Longitude, &shop.IsOpen, &shop.Notice, &shop.Rating, &shop.AiForecast, &shop.LastForecastAt, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Shop not found"})
	}

	products, err := listProductsForShop(ctx, shopID)
	if err != nil {
		log.Printf("Error listing products for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve shop products"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"shop": shop, "products": products}})
}

// HandleUpdateShopSettings updates the authenticated shopkeeper's shop.
// PUT /api/v1/shopkeeper/shop
func HandleUpdateShopSettings(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	shopID := claims.UserID

	var req models.UpdateShopRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	db := database.GetDB()
	ctx := context.Background()

	var shop models.Shop
	err = db.QueryRow(ctx, `
		UPDATE shops
		SET name       = COALESCE($2, name),
		    is_open    = COALESCE($3, is_open),
		    notice     = COALESCE($4, notice),
		    latitude   = COALESCE($5, latitude),
		    longitude  = COALESCE($6, longitude),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, name, latitude, longitude, is_open, notice, rating, ai_forecast, last_forecast_at, created_at, updated_at
	`, shopID, req.Name, req.IsOpen, req.Notice, req.Latitude, req.Longitude).Scan(
		&shop.ID, &shop.Name, &shop.Latitude, &shop.Longitude, &shop.IsOpen, &shop.Notice, &shop.Rating, &shop.AiForecast, &shop.LastForecastAt, &shop.CreatedAt, &shop.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error updating shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update shop"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": shop})
}
