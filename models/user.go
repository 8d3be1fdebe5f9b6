package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Direction values shared by users and orders. A user direction of
// "Actual" defers to the direction the customer picked on the order;
// any other value overrides the order outcome at settlement time.
const (
	DirectionActual  = "Actual"
	DirectionBuyUp   = "Buy Up"
	DirectionBuyDown = "Buy Down"
)

// Win/lose setting values. Stored per user but not consumed by
// settlement; reserved for a future outcome policy.
const (
	WinLoseToWin  = "To Win"
	WinLoseToLose = "To Lose"
	WinLoseRandom = "Random"
)

type User struct {
	gorm.Model

	Username         string          `gorm:"uniqueIndex;size:64" json:"username"`
	TotalBalance     decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"total_balance"`
	AvailableBalance decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"available_balance"`
	FrozenBalance    decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"frozen_balance"`
	Reputation       int             `gorm:"default:100" json:"reputation"`
	Direction        string          `gorm:"size:16;default:'Actual'" json:"direction"`
	WinLoseSetting   string          `gorm:"size:16;default:'Random'" json:"win_lose_setting"`
	IsAdmin          bool            `gorm:"default:false" json:"is_admin"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
}
