package handlers

import (
	"context"
	"log"
	"time"

	"shoplink/database"
	"shoplink/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SyncRequest represents a batch of sales logged while the device was offline.
type SyncRequest struct {
	BatchID  string            `json:"batchId"`
	DeviceID string            `json:"deviceId"`
	Sales    []OfflineSaleData `json:"sales"`
}

// OfflineSaleData is a single offline sale to sync. The ID is generated on
// the device so retried batches stay idempotent.
type OfflineSaleData struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// SyncResult represents the result of syncing a single sale.
type SyncResult struct {
	LocalID string  `json:"localId"`
	Status  string  `json:"status"` // "synced", "duplicate" or "failed"
	Error   *string `json:"error,omitempty"`
}

// BatchSyncResponse represents the response for a batch sync.
type BatchSyncResponse struct {
	Status      string       `json:"status"` // "success", "partial", "failed"
	BatchID     string       `json:"batchId"`
	Results     []SyncResult `json:"results"`
	SyncedCount int          `json:"syncedCount"`
	FailedCount int          `json:"failedCount"`
}

// HandleSyncOfflineSales ingests a batch of offline sales for the
// authenticated shopkeeper. Each record either inserts, is recognized as a
// duplicate of an earlier sync, or fails individually.
// POST /api/v1/shopkeeper/sales/sync
func HandleSyncOfflineSales(c *fiber.Ctx) error {
	claims, err := middleware.ExtractClaims(c)
	if err != nil {
		return err
	}
	shopID := claims.UserID

	var syncReq SyncRequest
	if err := c.BodyParser(&syncReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid sync request format"})
	}

	if len(syncReq.Sales) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Sync batch contains no sales"})
	}

	log.Printf("Batch sync started - batch: %s, sales: %d, shop: %s, device: %s",
		syncReq.BatchID, len(syncReq.Sales), shopID, syncReq.DeviceID)

	db := database.GetDB()
	ctx := context.Background()

	results := make([]SyncResult, 0, len(syncReq.Sales))
	synced, failed := 0, 0

	for _, sale := range syncReq.Sales {
		result := SyncResult{LocalID: sale.ID}

		if _, err := uuid.Parse(sale.ID); err != nil {
			msg := "invalid sale id, expected a UUID"
			result.Status = "failed"
			result.Error = &msg
			failed++
			results = append(results, result)
			continue
		}
		if sale.Item == "" || sale.Quantity <= 0 || sale.CreatedAt.IsZero() {
			msg := "item, positive quantity and createdAt are required"
			result.Status = "failed"
			result.Error = &msg
			failed++
			results = append(results, result)
			continue
		}

		tag, err := db.Exec(ctx, `
			INSERT INTO sales (id, shop_id, item, quantity, price, total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, sale.ID, shopID, sale.Item, sale.Quantity, sale.Price, sale.Total, sale.CreatedAt)
		if err != nil {
			log.Printf("Error syncing offline sale %s: %v", sale.ID, err)
			msg := "database error"
			result.Status = "failed"
			result.Error = &msg
			failed++
		} else if tag.RowsAffected() == 0 {
			result.Status = "duplicate"
			synced++
		} else {
			result.Status = "synced"
			synced++
		}
		results = append(results, result)
	}

	status := "success"
	if failed > 0 && synced > 0 {
		status = "partial"
	} else if failed > 0 {
		status = "failed"
	}

	log.Printf("Batch sync finished - batch: %s, synced: %d, failed: %d", syncReq.BatchID, synced, failed)

	return c.JSON(BatchSyncResponse{
		Status:      status,
		BatchID:     syncReq.BatchID,
		Results:     results,
		SyncedCount: synced,
		FailedCount: failed,
	})
}
