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

// HandleCreateReview posts a customer review for a shop and recomputes the
// shop's average rating.
// POST /api/v1/shops/:shopId/reviews
func HandleCreateReview(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	shopID := c.Params("shopId")

	var req models.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Rating must be between 1 and 5"})
	}

	db := database.GetDB()
	ctx := context.Background()

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Printf("Error starting review transaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save review"})
	}
	defer tx.Rollback(ctx)

	var review models.Review
	err = tx.QueryRow(ctx, `
		INSERT INTO reviews (shop_id, user_id, user_name, rating, comment)
		VALUES ($1, $2, (SELECT name FROM users WHERE id = $2), $3, $4)
		RETURNING id, shop_id, user_id, user_name, rating, comment, created_at
	`, shopID, claims.UserID, req.Rating, req.Comment).Scan(
		&review.ID, &review.ShopID, &review.UserID, &review.UserName, &review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating review for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save review"})
	}

	_, err = tx.Exec(ctx, `
		UPDATE shops
		SET rating = (SELECT AVG(rating) FROM reviews WHERE shop_id = $1), updated_at = now()
		WHERE id = $1
	`, shopID)
	if err != nil {
		log.Printf("Error updating rating for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update shop rating"})
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to save review"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": review})
}

// HandleListReviews lists a shop's reviews, newest first.
// GET /api/v1/shops/:shopId/reviews?page=..&pageSize=..
func HandleListReviews(c *fiber.Ctx) error {
	shopID := c.Params("shopId")

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
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE shop_id = $1`, shopID).Scan(&totalItems); err != nil {
		log.Printf("Error counting reviews for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve reviews"})
	}

	rows, err := db.Query(ctx, `
		SELECT id, shop_id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE shop_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, shopID, pageSize, offset)
	if err != nil {
		log.Printf("Error listing reviews for shop %s: %v", shopID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve reviews"})
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ShopID, &r.UserID, &r.UserName, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			log.Printf("Error scanning review row: %v", err)
			continue
		}
		reviews = append(reviews, r)
	}

	resp := models.PaginatedReviewsResponse{
		Data:       reviews,
		Pagination: utils.CreatePagination(totalItems, page, pageSize),
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}
