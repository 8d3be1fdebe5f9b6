package jobs

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"bitbet/database"
	"bitbet/models"
	"bitbet/services"
	"bitbet/task"
)

const defaultSweepInterval = 10 * time.Second

func sweepInterval() time.Duration {
	if v := os.Getenv("SWEEP_INTERVAL_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
		log.Printf("⚠️  Invalid value for SWEEP_INTERVAL_SEC: %s\n", v)
	}
	return defaultSweepInterval
}

// StartSettlementScheduler runs the periodic sweep that settles every
// expired active order. An initial sweep shortly after startup picks
// up orders whose one-shot timers were lost to a restart.
func StartSettlementScheduler() {
	go func() {
		time.Sleep(time.Second)
		SweepExpiredOrders()

		ticker := time.NewTicker(sweepInterval())
		for range ticker.C {
			SweepExpiredOrders()
		}
	}()

	tickerCleanup := time.NewTicker(time.Hour)
	go func() {
		for range tickerCleanup.C {
			task.CleanupExpiredSessions()
		}
	}()
}

// RegisterOrder arms the one-shot timer for a freshly placed order.
// The timer races with the sweep; settlement itself decides the winner.
func RegisterOrder(order *models.BettingOrder) {
	d := time.Until(order.ExpiresAt)
	if d < 0 {
		d = 0
	}
	id := order.ID
	time.AfterFunc(d, func() {
		settleOne(id)
	})
}

// SweepExpiredOrders settles every active order whose deadline has
// passed.
func SweepExpiredOrders() {
	var orders []models.BettingOrder
	if err := database.DB.
		Where("status = ? AND expires_at <= ?", models.OrderStatusActive, time.Now()).
		Find(&orders).Error; err != nil {
		log.Printf("❌ Sweep query failed: %v", err)
		return
	}

	for i := range orders {
		settleOne(orders[i].ID)
	}
}

func settleOne(orderID uint) {
	err := services.Settle(orderID)
	if err == nil {
		return
	}
	// The other trigger got there first, or the order was cancelled.
	if errors.Is(err, services.ErrOrderNotActive) || errors.Is(err, services.ErrOrderNotFound) {
		return
	}
	log.Printf("❌ Failed to settle order %d: %v", orderID, err)
}
