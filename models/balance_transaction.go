package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TrxTypeEscrow       = "escrow"
	TrxTypeSettleWin    = "settle_win"
	TrxTypeSettleLoss   = "settle_loss"
	TrxTypeCancelRefund = "cancel_refund"
	TrxTypeAdjustment   = "adjustment"
)

// BalanceTransaction records a single movement against a user's
// available balance, with the balance before and after the movement.
type BalanceTransaction struct {
	gorm.Model

	UserID        uint            `gorm:"index"`
	OrderID       string          `gorm:"size:32;index"`
	TrxType       string          `gorm:"size:16"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2)"`
	BalanceBefore decimal.Decimal `gorm:"type:numeric(20,2)"`
	BalanceAfter  decimal.Decimal `gorm:"type:numeric(20,2)"`
	Note          string          `gorm:"size:255"`
	RefID         string          `gorm:"size:64;index"`
}
