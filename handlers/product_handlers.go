package handlers

import (
	"context"
	"log"
	"time"

	"shoplink/database"
	"shoplink/middleware"
	"shoplink/models"

	"github.com/gofiber/fiber/v2"
)

// listProductsForShop loads a shop's inventory, newest first, marking
// items whose expiry date has passed.
func listProductsForShop(ctx context.Context, shopID string) ([]models.Product, error) {
	rows, err := database.GetDB().Query(ctx, `
		SELECT id, shop_id, name, category, price, expiry_date, out_of_stock, created_at, updated_at
		FROM products
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`, shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	now := time.Now()
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Name, &p.Category, &p.Price, &p.ExpiryDate, &p.OutOfStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Printf("Error scanning product row: %v", err)
			continue
		}
		p.Expired = p.ExpiryDate != nil && p.ExpiryDate.Before(now)
		products = append(products, p)
	}
	return products, rows.Err()
}

// HandleListOwnProducts lists the authenticated shopkeeper's inventory.
// GET /api/v1/shopkeeper/products
func HandleListOwnProducts(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}

	products, err := listProductsForShop(context.Background(), claims.UserID)
	if err != nil {
		log.Printf("Error listing products for shop %s: %v", claims.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve products"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": products})
}

// HandleCreateProduct adds an item to the shopkeeper's inventory.
// POST /api/v1/shopkeeper/products
func HandleCreateProduct(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}

	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.Name == "" || req.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product name and a non-negative price are required"})
	}

	var p models.Product
	err = database.GetDB().QueryRow(context.Background(), `
		INSERT INTO products (shop_id, name, category, price, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shop_id, name, category, price, expiry_date, out_of_stock, created_at, updated_at
	`, claims.UserID, req.Name, req.Category, req.Price, req.ExpiryDate).Scan(
		&p.ID, &p.ShopID, &p.Name, &p.Category, &p.Price, &p.ExpiryDate, &p.OutOfStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": p})
}

// HandleUpdateProduct updates an inventory item owned by the shopkeeper.
// PUT /api/v1/shopkeeper/products/:productId
func HandleUpdateProduct(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	productID := c.Params("productId")

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var p models.Product
	err = database.GetDB().QueryRow(context.Background(), `
		UPDATE products
		SET name         = COALESCE($3, name),
		    category     = COALESCE($4, category),
		    price        = COALESCE($5, price),
		    expiry_date  = COALESCE($6, expiry_date),
		    out_of_stock = COALESCE($7, out_of_stock),
		    updated_at   = now()
		WHERE id = $1 AND shop_id = $2
		RETURNING id, shop_id, name, category, price, expiry_date, out_of_stock, created_at, updated_at
	`, productID, claims.UserID, req.Name, req.Category, req.Price, req.ExpiryDate, req.OutOfStock).Scan(
		&p.ID, &p.ShopID, &p.Name, &p.Category, &p.Price, &p.ExpiryDate, &p.OutOfStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": p})
}

// HandleDeleteProduct removes an inventory item owned by the shopkeeper.
// DELETE /api/v1/shopkeeper/products/:productId
func HandleDeleteProduct(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	productID := c.Params("productId")

	tag, err := database.GetDB().Exec(context.Background(), `
		DELETE FROM products WHERE id = $1 AND shop_id = $2
	`, productID, claims.UserID)
	if err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete product"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Product deleted"})
}
