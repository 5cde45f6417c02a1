package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"shoplink/forecast"
)

// shopTimeout bounds one shop's forecast run inside the sweep.
const shopTimeout = 30 * time.Second

// Scheduler periodically refreshes the stored forecast for every shop so
// the dashboard can show it without waiting on the external services.
type Scheduler struct {
	Cron     *cron.Cron
	DB       *pgxpool.Pool
	Forecast *forecast.Service
}

// New creates a Scheduler.
func New(db *pgxpool.Pool, svc *forecast.Service) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		DB:       db,
		Forecast: svc,
	}
}

// Register registers the nightly refresh task with the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshAll); err != nil {
		return fmt.Errorf("register forecast refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("Forecast scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("Forecast scheduler stopped")
}

// RunNow executes the refresh sweep immediately (for manual trigger).
func (s *Scheduler) RunNow() {
	s.refreshAll()
}

// refreshAll recomputes and stores the forecast for every shop. A failure
// for one shop is logged and does not abort the sweep.
func (s *Scheduler) refreshAll() {
	log.Println("Running forecast refresh sweep")
	ctx := context.Background()

	rows, err := s.DB.Query(ctx, `SELECT id, name FROM shops`)
	if err != nil {
		log.Printf("Forecast sweep failed to list shops: %v", err)
		return
	}
	defer rows.Close()

	type shopRow struct{ id, name string }
	var shops []shopRow
	for rows.Next() {
		var sh shopRow
		if err := rows.Scan(&sh.id, &sh.name); err != nil {
			log.Printf("Forecast sweep failed to scan shop row: %v", err)
			continue
		}
		shops = append(shops, sh)
	}
	rows.Close()

	refreshed := 0
	for _, sh := range shops {
		if err := s.refreshShop(ctx, sh.id); err != nil {
			log.Printf("Forecast refresh failed for shop %s (%s): %v", sh.id, sh.name, err)
			continue
		}
		refreshed++
	}

	log.Printf("Forecast refresh sweep finished: %d/%d shops updated", refreshed, len(shops))
}

func (s *Scheduler) refreshShop(ctx context.Context, shopID string) error {
	ctx, cancel := context.WithTimeout(ctx, shopTimeout)
	defer cancel()

	result, err := s.Forecast.WeeklyForecast(ctx, shopID)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(ctx, `
		UPDATE shops
		SET ai_forecast = $2, last_forecast_at = $3, updated_at = now()
		WHERE id = $1
	`, shopID, result.ForecastText, result.GeneratedAt)
	if err != nil {
		return fmt.Errorf("store forecast for shop %s: %w", shopID, err)
	}
	return nil
}
