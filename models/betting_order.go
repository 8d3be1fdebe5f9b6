package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusActive    = "active"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	OrderResultWin  = "win"
	OrderResultLoss = "loss"
)

// BettingOrder is a timed directional wager. Direction always holds the
// customer's own click; an admin override on the user is applied only
// when the order is settled.
type BettingOrder struct {
	gorm.Model

	OrderID   string          `gorm:"uniqueIndex;size:32" json:"order_id"`
	UserID    uint            `gorm:"index" json:"user_id"`
	Asset     string          `gorm:"size:32" json:"asset"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2)" json:"amount"`
	Direction string          `gorm:"size:16" json:"direction"`
	Duration  int             `json:"duration"`

	EntryPrice decimal.Decimal `gorm:"type:numeric(20,2)" json:"entry_price"`
	ExitPrice  decimal.Decimal `gorm:"type:numeric(20,2)" json:"exit_price"`
	Profit     decimal.Decimal `gorm:"type:numeric(20,2)" json:"profit"`

	Status string `gorm:"size:16;index;index:idx_orders_status_expires" json:"status"`
	Result string `gorm:"size:8" json:"result"`

	ExpiresAt time.Time `gorm:"index:idx_orders_status_expires" json:"expires_at"`

	// Raw oracle response captured at placement, kept for audit.
	OracleQuote datatypes.JSON `gorm:"type:jsonb" json:"-"`
}
