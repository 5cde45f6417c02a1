package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shoplink/forecast"
)

// SalesHistory reads a shop's sales for the forecast aggregator.
type SalesHistory struct {
	pool *pgxpool.Pool
}

// NewSalesHistory creates a history source backed by the given pool.
func NewSalesHistory(pool *pgxpool.Pool) *SalesHistory {
	return &SalesHistory{pool: pool}
}

// SalesForShop returns all sale records for a shop ordered by creation time
// descending, the order the feature computation expects.
func (h *SalesHistory) SalesForShop(ctx context.Context, shopID string) ([]forecast.SaleRecord, error) {
	query := `
		SELECT item, quantity, price, total, created_at
		FROM sales
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`
	rows, err := h.pool.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("query sales for shop %s: %w", shopID, err)
	}
	defer rows.Close()

	var sales []forecast.SaleRecord
	for rows.Next() {
		var s forecast.SaleRecord
		if err := rows.Scan(&s.Item, &s.Quantity, &s.Price, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale record: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale records: %w", err)
	}

	return sales, nil
}
