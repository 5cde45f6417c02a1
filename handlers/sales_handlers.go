package handlers

import (
	"context"
	"log"

	"shoplink/database"
	"shoplink/middleware"
	"shoplink/models"
	"shoplink/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleLogSale records a sale for the authenticated shopkeeper.
// POST /api/v1/shopkeeper/sales
func HandleLogSale(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}

	var req models.CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.Item == "" || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item and a positive quantity are required"})
	}
	if req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Price must not be negative"})
	}

	total := float64(req.Quantity) * req.Price

	var sale models.Sale
	err = database.GetDB().QueryRow(context.Background(), `
		INSERT INTO sales (shop_id, item, quantity, price, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shop_id, item, quantity, price, total, created_at
	`, claims.UserID, req.Item, req.Quantity, req.Price, total).Scan(
		&sale.ID, &sale.ShopID, &sale.Item, &sale.Quantity, &sale.Price, &sale.Total, &sale.CreatedAt,
	)
	if err != nil {
		log.Printf("Error logging sale for shop %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to log sale"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": sale})
}

// HandleListSales lists the shopkeeper's sales history, newest first.
// GET /api/v1/shopkeeper/sales?page=..&pageSize=..
func HandleListSales(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	shopID := claims.UserID

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	db := database.GetDB()
	ctx := context.Background()

	var totalItems int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE shop_id = $1`, shopID).Scan(&totalItems); err != nil {
		log.Printf("Error counting sales for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales"})
	}

	rows, err := db.Query(ctx, `
		SELECT id, shop_id, item, quantity, price, total, created_at
		FROM sales
		WHERE shop_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, shopID, pageSize, offset)
	if err != nil {
		log.Printf("Error listing sales for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales"})
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.ShopID, &sale.Item, &sale.Quantity, &sale.Price, &sale.Total, &sale.CreatedAt); err != nil {
			log.Printf("Error scanning sale row: %v", err)
			continue
		}
		sales = append(sales, sale)
	}

	resp := models.PaginatedSalesResponse{
		Data:       sales,
		Pagination: utils.CreatePagination(totalItems, page, pageSize),
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}
